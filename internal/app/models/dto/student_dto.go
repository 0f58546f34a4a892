package dto

// StudentForm is the sparse patch object for student create and update.
// Every field is optional: omitted fields are never touched on update, which
// is what lets each workflow step persist only its own values. It binds from
// both JSON bodies and multipart form fields (the photo file rides alongside
// as "studentPhoto").
type StudentForm struct {
	DateOfAdmission  *string `json:"dateOfAdmission" form:"dateOfAdmission"`
	RollNumber       *string `json:"rollNumber" form:"rollNumber"`
	Name             *string `json:"name" form:"name"`
	ContactNo        *string `json:"contactNo" form:"contactNo"`
	Gender           *string `json:"gender" form:"gender"`
	Nationality      *string `json:"nationality" form:"nationality"`
	AadharNo         *string `json:"aadharNo" form:"aadharNo"`
	DateOfBirth      *string `json:"dateOfBirth" form:"dateOfBirth"`
	Caste            *string `json:"caste" form:"caste"`
	Religion         *string `json:"religion" form:"religion"`
	Community        *string `json:"community" form:"community"`
	CommunalCategory *string `json:"communalCategory" form:"communalCategory"`

	FatherName         *string `json:"fatherName" form:"fatherName"`
	FatherContactNo    *string `json:"fatherContactNo" form:"fatherContactNo"`
	FatherOccupation   *string `json:"fatherOccupation" form:"fatherOccupation"`
	FatherAadharNo     *string `json:"fatherAadharNo" form:"fatherAadharNo"`
	MotherName         *string `json:"motherName" form:"motherName"`
	MotherContactNo    *string `json:"motherContactNo" form:"motherContactNo"`
	MotherOccupation   *string `json:"motherOccupation" form:"motherOccupation"`
	MotherAadharNo     *string `json:"motherAadharNo" form:"motherAadharNo"`
	GuardianName       *string `json:"guardianName" form:"guardianName"`
	GuardianContactNo  *string `json:"guardianContactNo" form:"guardianContactNo"`
	GuardianOccupation *string `json:"guardianOccupation" form:"guardianOccupation"`
	GuardianAadharNo   *string `json:"guardianAadharNo" form:"guardianAadharNo"`

	PermanentAddressLine1 *string `json:"permanentAddressLine1" form:"permanentAddressLine1"`
	PermanentAddressLine2 *string `json:"permanentAddressLine2" form:"permanentAddressLine2"`
	PermanentTaluk        *string `json:"permanentTaluk" form:"permanentTaluk"`
	PermanentDistrict     *string `json:"permanentDistrict" form:"permanentDistrict"`
	PermanentState        *string `json:"permanentState" form:"permanentState"`
	PermanentPinCode      *string `json:"permanentPinCode" form:"permanentPinCode"`

	CommunicationAddressLine1 *string `json:"communicationAddressLine1" form:"communicationAddressLine1"`
	CommunicationAddressLine2 *string `json:"communicationAddressLine2" form:"communicationAddressLine2"`
	CommunicationTaluk        *string `json:"communicationTaluk" form:"communicationTaluk"`
	CommunicationDistrict     *string `json:"communicationDistrict" form:"communicationDistrict"`
	CommunicationState        *string `json:"communicationState" form:"communicationState"`
	CommunicationPinCode      *string `json:"communicationPinCode" form:"communicationPinCode"`

	LastSchoolAttended *string `json:"lastSchoolAttended" form:"lastSchoolAttended"`
	LastClassCompleted *string `json:"lastClassCompleted" form:"lastClassCompleted"`
	YearOfPassing      *string `json:"yearOfPassing" form:"yearOfPassing"`
	EmisNumberOrTC     *string `json:"emisNumberOrTC" form:"emisNumberOrTC"`

	CourseSelected          []string `json:"courseSelected" form:"courseSelected"`
	MediumOfInstruction     *string  `json:"mediumOfInstruction" form:"mediumOfInstruction"`
	HostelDayScholarOrBus   *string  `json:"hostelDayScholarOrBus" form:"hostelDayScholarOrBus"`
	ExtraCurricularActivity *string  `json:"extraCurricularActivity" form:"extraCurricularActivity"`

	PhysicallyChallenged    *bool `json:"physicallyChallenged" form:"physicallyChallenged"`
	ExServiceManChild       *bool `json:"exServiceManChild" form:"exServiceManChild"`
	BelongsToAndamanNicobar *bool `json:"belongsToAndamanNicobar" form:"belongsToAndamanNicobar"`
}

// IsEmpty reports whether the form carries no values at all
func (f *StudentForm) IsEmpty() bool {
	return f == nil || (f.Name == nil && f.ContactNo == nil && f.Gender == nil &&
		f.Nationality == nil && f.AadharNo == nil && f.DateOfBirth == nil &&
		f.DateOfAdmission == nil && f.RollNumber == nil && f.Caste == nil &&
		f.Religion == nil && f.Community == nil && f.CommunalCategory == nil &&
		f.FatherName == nil && f.MotherName == nil && f.GuardianName == nil &&
		f.FatherContactNo == nil && f.MotherContactNo == nil && f.GuardianContactNo == nil &&
		f.FatherOccupation == nil && f.MotherOccupation == nil && f.GuardianOccupation == nil &&
		f.FatherAadharNo == nil && f.MotherAadharNo == nil && f.GuardianAadharNo == nil &&
		f.PermanentAddressLine1 == nil && f.PermanentAddressLine2 == nil &&
		f.PermanentTaluk == nil && f.PermanentDistrict == nil &&
		f.PermanentState == nil && f.PermanentPinCode == nil &&
		f.CommunicationAddressLine1 == nil && f.CommunicationAddressLine2 == nil &&
		f.CommunicationTaluk == nil && f.CommunicationDistrict == nil &&
		f.CommunicationState == nil && f.CommunicationPinCode == nil &&
		f.LastSchoolAttended == nil && f.LastClassCompleted == nil &&
		f.YearOfPassing == nil && f.EmisNumberOrTC == nil &&
		len(f.CourseSelected) == 0 && f.MediumOfInstruction == nil &&
		f.HostelDayScholarOrBus == nil && f.ExtraCurricularActivity == nil &&
		f.PhysicallyChallenged == nil && f.ExServiceManChild == nil &&
		f.BelongsToAndamanNicobar == nil)
}
