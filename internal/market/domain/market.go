package domain

type Market struct {
	ID          string
	Name        string
	Description string
	Owner       string
	Phone       string
	ImageURL    string
	Latitude    float64
	Longitude   float64
}
