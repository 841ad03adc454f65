package models

// Enum-coded fields shared by students and mentors. The codes are the values
// stored in the MySQL enum columns; the display vocabulary lives in
// vocabulary.go.

type Campus string

const (
	CampusAntonioVaras Campus = "ANTONIO_VARAS"
	CampusVinaDelMar   Campus = "VINA_DEL_MAR"
	CampusConcepcion   Campus = "CONCEPCION"
)

type Career string

const (
	CareerCivilEngineering      Career = "CIVIL_ENGINEERING"
	CareerComputerEngineering   Career = "COMPUTER_ENGINEERING"
	CareerElectricalEngineering Career = "ELECTRICAL_ENGINEERING"
	CareerIndustrialEngineering Career = "INDUSTRIAL_ENGINEERING"
)

type Subject string

const (
	SubjectCalculusI     Subject = "CALCULUS_I"
	SubjectLinearAlgebra Subject = "LINEAR_ALGEBRA"
	SubjectPhysics       Subject = "PHYSICS"
	SubjectProgramming   Subject = "PROGRAMMING"
	SubjectElectronics   Subject = "ELECTRONICS"
)

type Language string

const (
	LanguageSpanish        Language = "SPANISH"
	LanguageEnglish        Language = "ENGLISH"
	LanguageSpanishEnglish Language = "SPANISH_ENGLISH"
)

type Modality string

const (
	ModalityInPerson Modality = "IN_PERSON"
	ModalityOnline   Modality = "ONLINE"
)

// CampusValues lists every valid campus code.
func CampusValues() []Campus {
	return []Campus{CampusAntonioVaras, CampusVinaDelMar, CampusConcepcion}
}

func CareerValues() []Career {
	return []Career{
		CareerCivilEngineering,
		CareerComputerEngineering,
		CareerElectricalEngineering,
		CareerIndustrialEngineering,
	}
}

func SubjectValues() []Subject {
	return []Subject{
		SubjectCalculusI,
		SubjectLinearAlgebra,
		SubjectPhysics,
		SubjectProgramming,
		SubjectElectronics,
	}
}

func LanguageValues() []Language {
	return []Language{LanguageSpanish, LanguageEnglish, LanguageSpanishEnglish}
}

func ModalityValues() []Modality {
	return []Modality{ModalityInPerson, ModalityOnline}
}
