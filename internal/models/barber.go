package models

// Barber as served by the barbers service.
type Barber struct {
	ID     uint   `json:"id"`
	Name   string `json:"nombre"`
	Phone  string `json:"telefono"`
	Image  string `json:"imagenes"`
	Status string `json:"estado"`
}

func (b Barber) Active() bool {
	return b.Status == "" || b.Status == "ACTIVO"
}
