package dto

// LinhaImportacao é uma linha crua da planilha, já extraída pelo front
// ou pelo conversor de upload. Datas em ISO; campo vazio = ausente.
type LinhaImportacao struct {
	AppointmentID       string  `json:"appointment_id"`
	TruckType           string  `json:"truck_type"`
	ExpectedArrivalDate string  `json:"expected_arrival_date"`
	PriorityLastUpdate  string  `json:"priority_last_update"`
	PriorityScore       float64 `json:"priority_score"`
	Cartons             int     `json:"cartons"`
	Units               int     `json:"units"`
}

type ResultadoImportacaoDTO struct {
	BatchID     string `json:"batch_id"`
	Inseridas   int    `json:"inseridas"`
	Atualizadas int    `json:"atualizadas"`
	Ignoradas   int    `json:"ignoradas"`
}
