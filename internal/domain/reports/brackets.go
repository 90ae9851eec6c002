package reports

const (
	Bracket18To25 = "18-25"
	Bracket26To30 = "26-30"
	Bracket31To40 = "31-40"
	Bracket41To50 = "41-50"
	Bracket51Plus = "51+"
)

// Brackets devuelve las etiquetas en orden de presentación.
func Brackets() []string {
	return []string{Bracket18To25, Bracket26To30, Bracket31To40, Bracket41To50, Bracket51Plus}
}

// BracketOf clasifica una edad. "51+" es el ELSE: también recibe edades
// menores de 18 y edades NULL. Los reportes históricos se armaron así.
func BracketOf(age *int) string {
	if age == nil {
		return Bracket51Plus
	}
	switch a := *age; {
	case a >= 18 && a <= 25:
		return Bracket18To25
	case a >= 26 && a <= 30:
		return Bracket26To30
	case a >= 31 && a <= 40:
		return Bracket31To40
	case a >= 41 && a <= 50:
		return Bracket41To50
	default:
		return Bracket51Plus
	}
}
