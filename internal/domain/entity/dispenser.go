package entity

// Dispenser estación de recarga de agua para mate, fijada en el mapa.
// Pertenece al backend; el cliente solo mantiene una copia en memoria.
type Dispenser struct {
	ID        int64
	Name      string
	Active    bool
	Permanent bool
	Location  Location
	Images    []Image
}

// Location ubicación normalizada del backend.
type Location struct {
	ID         int64
	Coordinate Coordinate
}

// Image foto asociada a un dispenser (ruta relativa en el backend).
type Image struct {
	ID   int64
	Path string
}

// DispenserInput campos enviados al crear o editar un dispenser.
type DispenserInput struct {
	Name       string
	Active     bool
	Permanent  bool
	Coordinate Coordinate
	Photo      *Photo // opcional
}

// Photo archivo adjunto en un envío multipart.
type Photo struct {
	Filename    string
	ContentType string
	Data        []byte
}

// IsEmpty indica que no hay archivo utilizable.
func (p *Photo) IsEmpty() bool {
	return p == nil || len(p.Data) == 0
}
