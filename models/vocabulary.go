package models

import "fmt"

// Vocabulary is the bidirectional mapping between the internal enum codes and
// the display strings the ML service speaks. It is built once at startup and
// injected wherever translation happens; unknown codes are an error rather
// than a passthrough so a vocabulary drift shows up immediately.
type Vocabulary struct {
	campus   *dimension
	career   *dimension
	subject  *dimension
	language *dimension
	modality *dimension
}

type dimension struct {
	name    string
	display map[string]string // code -> display
	code    map[string]string // display -> code
}

func newDimension(name string, pairs map[string]string) *dimension {
	d := &dimension{
		name:    name,
		display: make(map[string]string, len(pairs)),
		code:    make(map[string]string, len(pairs)),
	}
	for code, disp := range pairs {
		d.display[code] = disp
		d.code[disp] = code
	}
	return d
}

func (d *dimension) displayOf(code string) (string, error) {
	disp, ok := d.display[code]
	if !ok {
		return "", fmt.Errorf("unknown %s code: %q", d.name, code)
	}
	return disp, nil
}

func (d *dimension) codeOf(display string) (string, error) {
	code, ok := d.code[display]
	if !ok {
		return "", fmt.Errorf("unknown %s display value: %q", d.name, display)
	}
	return code, nil
}

// NewVocabulary builds the full mapping for the five categorical dimensions.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		campus: newDimension("campus", map[string]string{
			string(CampusAntonioVaras): "Antonio Varas",
			string(CampusVinaDelMar):   "Viña del Mar",
			string(CampusConcepcion):   "Concepción",
		}),
		career: newDimension("career", map[string]string{
			string(CareerCivilEngineering):      "Ingeniería Civil",
			string(CareerComputerEngineering):   "Ingeniería en Computación",
			string(CareerElectricalEngineering): "Ingeniería Eléctrica",
			string(CareerIndustrialEngineering): "Ingeniería Industrial",
		}),
		subject: newDimension("subject", map[string]string{
			string(SubjectCalculusI):     "Cálculo I",
			string(SubjectLinearAlgebra): "Álgebra Lineal",
			string(SubjectPhysics):       "Física",
			string(SubjectProgramming):   "Programación",
			string(SubjectElectronics):   "Electrónica",
		}),
		language: newDimension("language", map[string]string{
			string(LanguageSpanish):        "Español",
			string(LanguageEnglish):        "Inglés",
			string(LanguageSpanishEnglish): "Español e Inglés",
		}),
		modality: newDimension("modality", map[string]string{
			string(ModalityInPerson): "Presencial",
			string(ModalityOnline):   "Online",
		}),
	}
}

func (v *Vocabulary) DisplayCampus(c Campus) (string, error) {
	return v.campus.displayOf(string(c))
}

func (v *Vocabulary) CampusCode(display string) (Campus, error) {
	code, err := v.campus.codeOf(display)
	return Campus(code), err
}

func (v *Vocabulary) DisplayCareer(c Career) (string, error) {
	return v.career.displayOf(string(c))
}

func (v *Vocabulary) CareerCode(display string) (Career, error) {
	code, err := v.career.codeOf(display)
	return Career(code), err
}

func (v *Vocabulary) DisplaySubject(s Subject) (string, error) {
	return v.subject.displayOf(string(s))
}

func (v *Vocabulary) SubjectCode(display string) (Subject, error) {
	code, err := v.subject.codeOf(display)
	return Subject(code), err
}

func (v *Vocabulary) DisplayLanguage(l Language) (string, error) {
	return v.language.displayOf(string(l))
}

func (v *Vocabulary) LanguageCode(display string) (Language, error) {
	code, err := v.language.codeOf(display)
	return Language(code), err
}

func (v *Vocabulary) DisplayModality(m Modality) (string, error) {
	return v.modality.displayOf(string(m))
}

func (v *Vocabulary) ModalityCode(display string) (Modality, error) {
	code, err := v.modality.codeOf(display)
	return Modality(code), err
}

// ValidCampus reports whether code is one of the enumerated campus values.
func (v *Vocabulary) ValidCampus(code Campus) bool {
	_, ok := v.campus.display[string(code)]
	return ok
}

func (v *Vocabulary) ValidCareer(code Career) bool {
	_, ok := v.career.display[string(code)]
	return ok
}

func (v *Vocabulary) ValidSubject(code Subject) bool {
	_, ok := v.subject.display[string(code)]
	return ok
}

func (v *Vocabulary) ValidLanguage(code Language) bool {
	_, ok := v.language.display[string(code)]
	return ok
}

func (v *Vocabulary) ValidModality(code Modality) bool {
	_, ok := v.modality.display[string(code)]
	return ok
}
