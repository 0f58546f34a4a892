package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	BillRepository    *BillRepository
	CourseRepository  *CourseRepository
	FeeRepository     *FeeRepository
	UserRepository    *UserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(db),
		BillRepository:    NewBillRepository(db),
		CourseRepository:  NewCourseRepository(db),
		FeeRepository:     NewFeeRepository(db),
		UserRepository:    NewUserRepository(db),
	}
}
