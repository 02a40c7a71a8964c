package dto

type CargaListDTO struct {
	ID            uint   `json:"id"`
	AppointmentID string `json:"appointment_id"`

	TruckType string `json:"truck_type"`
	TruckTipo string `json:"truck_tipo"`

	ExpectedArrivalDate *string `json:"expected_arrival_date"`
	Status              string  `json:"status"`

	Units   int `json:"units"`
	Cartons int `json:"cartons"`

	AAResponsavel      *string `json:"aa_responsavel"`
	StartTime          *string `json:"start_time"`
	TempoTotalSegundos *int    `json:"tempo_total_segundos"`

	// contador vivo do SLA (negativo = estourado)
	TempoSLASegundos *int `json:"tempo_sla_segundos"`

	// atraso persistido
	AtrasoSegundos   int  `json:"atraso_segundos"`
	AtrasoRegistrado bool `json:"atraso_registrado"`

	AtrasoComentario *string `json:"atraso_comentario"`

	PriorityScore    float64 `json:"priority_score"`
	PrioridadeMaxima bool    `json:"prioridade_maxima"`
}
