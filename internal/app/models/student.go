package models

import "time"

// Student defines the admission record model based on the 'students' table.
// A row may legitimately exist in a partially filled state between workflow
// steps, so every field past the identifiers is nullable.
type Student struct {
	ID            int64  `json:"-" db:"id"`
	StudentID     string `json:"student_id" db:"student_id"`
	ApplicationNo string `json:"applicationNo" db:"application_no"`
	AdmissionNo   string `json:"admissionNo" db:"admission_no"`

	DateOfAdmission *string    `json:"dateOfAdmission,omitempty" db:"date_of_admission"`
	RollNumber      *string    `json:"rollNumber,omitempty" db:"roll_number"`
	Name            *string    `json:"name,omitempty" db:"name"`
	ContactNo       *string    `json:"contactNo,omitempty" db:"contact_no"`
	Gender          *string    `json:"gender,omitempty" db:"gender"`
	Nationality     *string    `json:"nationality,omitempty" db:"nationality"`
	AadharNo        *string    `json:"aadharNo,omitempty" db:"aadhar_no"`
	DateOfBirth     *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Caste           *string    `json:"caste,omitempty" db:"caste"`
	Religion        *string    `json:"religion,omitempty" db:"religion"`
	Community       *string    `json:"community,omitempty" db:"community"`
	// One of GEN, BC, BCM, MBC, DNC, SC, ST
	CommunalCategory *string `json:"communalCategory,omitempty" db:"communal_category"`

	FatherName         *string `json:"fatherName,omitempty" db:"father_name"`
	FatherContactNo    *string `json:"fatherContactNo,omitempty" db:"father_contact_no"`
	FatherOccupation   *string `json:"fatherOccupation,omitempty" db:"father_occupation"`
	FatherAadharNo     *string `json:"fatherAadharNo,omitempty" db:"father_aadhar_no"`
	MotherName         *string `json:"motherName,omitempty" db:"mother_name"`
	MotherContactNo    *string `json:"motherContactNo,omitempty" db:"mother_contact_no"`
	MotherOccupation   *string `json:"motherOccupation,omitempty" db:"mother_occupation"`
	MotherAadharNo     *string `json:"motherAadharNo,omitempty" db:"mother_aadhar_no"`
	GuardianName       *string `json:"guardianName,omitempty" db:"guardian_name"`
	GuardianContactNo  *string `json:"guardianContactNo,omitempty" db:"guardian_contact_no"`
	GuardianOccupation *string `json:"guardianOccupation,omitempty" db:"guardian_occupation"`
	GuardianAadharNo   *string `json:"guardianAadharNo,omitempty" db:"guardian_aadhar_no"`

	PermanentAddressLine1 *string `json:"permanentAddressLine1,omitempty" db:"permanent_address_line1"`
	PermanentAddressLine2 *string `json:"permanentAddressLine2,omitempty" db:"permanent_address_line2"`
	PermanentTaluk        *string `json:"permanentTaluk,omitempty" db:"permanent_taluk"`
	PermanentDistrict     *string `json:"permanentDistrict,omitempty" db:"permanent_district"`
	PermanentState        *string `json:"permanentState,omitempty" db:"permanent_state"`
	PermanentPinCode      *string `json:"permanentPinCode,omitempty" db:"permanent_pin_code"`

	CommunicationAddressLine1 *string `json:"communicationAddressLine1,omitempty" db:"communication_address_line1"`
	CommunicationAddressLine2 *string `json:"communicationAddressLine2,omitempty" db:"communication_address_line2"`
	CommunicationTaluk        *string `json:"communicationTaluk,omitempty" db:"communication_taluk"`
	CommunicationDistrict     *string `json:"communicationDistrict,omitempty" db:"communication_district"`
	CommunicationState        *string `json:"communicationState,omitempty" db:"communication_state"`
	CommunicationPinCode      *string `json:"communicationPinCode,omitempty" db:"communication_pin_code"`

	LastSchoolAttended *string `json:"lastSchoolAttended,omitempty" db:"last_school_attended"`
	LastClassCompleted *string `json:"lastClassCompleted,omitempty" db:"last_class_completed"`
	YearOfPassing      *string `json:"yearOfPassing,omitempty" db:"year_of_passing"`
	EmisNumberOrTC     *string `json:"emisNumberOrTC,omitempty" db:"emis_number_or_tc"`

	CourseSelected          []string `json:"courseSelected,omitempty" db:"course_selected"`
	MediumOfInstruction     *string  `json:"mediumOfInstruction,omitempty" db:"medium_of_instruction"`
	HostelDayScholarOrBus   *string  `json:"hostelDayScholarOrBus,omitempty" db:"hostel_day_scholar_or_bus"`
	ExtraCurricularActivity *string  `json:"extraCurricularActivity,omitempty" db:"extra_curricular_activity"`

	PhysicallyChallenged    bool `json:"physicallyChallenged" db:"physically_challenged"`
	ExServiceManChild       bool `json:"exServiceManChild" db:"ex_service_man_child"`
	BelongsToAndamanNicobar bool `json:"belongsToAndamanNicobar" db:"belongs_to_andaman_nicobar"`

	PhotoURL *string `json:"photoUrl,omitempty" db:"photo_url"`
}
