package dto

// ErrorResponse - стандартный ответ с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SeedResponse описывает результат загрузки начальных данных.
type SeedResponse struct {
	Message     string `json:"message"`
	Educations  int    `json:"educations"`
	Experiences int    `json:"experiences"`
	Projects    int    `json:"projects"`
	Skills      int    `json:"skills"`
}
