package models

import "time"

// Carga é um agendamento de doca (uma booking por caminhão).
// Os campos de atraso são permanentes: uma vez registrado, o atraso
// nunca volta para trás (auditoria do painel).
type Carga struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID string `gorm:"size:80;uniqueIndex;not null" json:"appointment_id"`

	TruckType string `gorm:"size:30" json:"truck_type"`
	TruckTipo string `gorm:"size:30" json:"truck_tipo"`

	ExpectedArrivalDate *time.Time `gorm:"index" json:"expected_arrival_date"`
	PriorityLastUpdate  *time.Time `json:"priority_last_update"`

	PriorityScore    float64 `gorm:"default:0" json:"priority_score"`
	PrioridadeMaxima bool    `gorm:"default:false" json:"prioridade_maxima"`

	Status string `gorm:"size:20;default:'arrival_scheduled';index" json:"status"`

	Cartons int `gorm:"default:0" json:"cartons"`
	Units   int `gorm:"default:0" json:"units"`

	AAResponsavel *string `gorm:"size:80;index" json:"aa_responsavel"`

	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`

	TempoTotalSegundos *int     `json:"tempo_total_segundos"`
	UnitsPorHora       *float64 `json:"units_por_hora"`

	// ARRIVAL SLA
	ArrivedAt          *time.Time `json:"arrived_at"`
	SlaSetarAADeadline *time.Time `json:"sla_setar_aa_deadline"`

	// Atraso persistente
	AtrasoRegistrado bool       `gorm:"not null;default:false" json:"atraso_registrado"`
	AtrasoSegundos   int        `gorm:"not null;default:0" json:"atraso_segundos"`
	AtrasoComentario *string    `gorm:"type:text" json:"atraso_comentario"`
	AtrasoComentadoEm *time.Time `json:"atraso_comentado_em"`

	DeleteReason *string    `gorm:"type:text" json:"delete_reason"`
	DeletedAt    *time.Time `json:"deleted_at"`

	CreatedAt time.Time `json:"created_at"`
}
