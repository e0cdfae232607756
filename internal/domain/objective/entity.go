package objective

// Objective is a client site where shifts are performed, read from the site
// directory.
type Objective struct {
	ID        string
	Name      string
	Latitude  float64
	Longitude float64
}
