package model

// MinVehicleYear is the oldest model year accepted by the API
const MinVehicleYear = 1950

// DefaultPageSize is the number of records returned per listing page
const DefaultPageSize = 10

// Vehicle represents a registered vehicle
type Vehicle struct {
	ID    int    `json:"Id"`
	Name  string `json:"Nome"`
	Brand string `json:"Marca"`
	Year  int    `json:"Ano"`
}

// VehicleDTO is used for creating and replacing a vehicle
type VehicleDTO struct {
	Name  string `json:"Nome" validate:"notblank,max=150"`
	Brand string `json:"Marca" validate:"notblank,max=100"`
	Year  int    `json:"Ano" validate:"gte=1950"`
}

// ValidationErrors is the 400 response body listing every violated rule
type ValidationErrors struct {
	Messages []string `json:"Mensagens"`
}

// Home is the static payload served at the API root
type Home struct {
	Message string `json:"Mensagem"`
	Doc     string `json:"Doc"`
	Version string `json:"Versao"`
}
