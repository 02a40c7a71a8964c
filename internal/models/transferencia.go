package models

import "time"

// Transferencia é um trailer transfer acompanhado contra o prazo de
// LATE STOW. Vive 1:1 com a Carga de origem (por appointment_id), mas
// sobrevive à deleção dela — CargaID é só referência de lookup.
type Transferencia struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID string `gorm:"size:80;uniqueIndex;not null" json:"appointment_id"`
	CargaID       *uint  `json:"carga_id"`

	// Campos espelhados da carga pelo sync
	ExpectedArrivalDate *time.Time `gorm:"index" json:"expected_arrival_date"`
	StatusCarga         string     `gorm:"size:20" json:"status_carga"`
	Units               int        `gorm:"default:0" json:"units"`
	Cartons             int        `gorm:"default:0" json:"cartons"`

	Origem *string `gorm:"size:10" json:"origem"`
	VRID   *string `gorm:"size:40" json:"vrid"`

	LateStowDeadline *time.Time `json:"late_stow_deadline"`
	InfoPreenchida   bool       `gorm:"not null;default:false" json:"info_preenchida"`

	Finalizada bool       `gorm:"not null;default:false" json:"finalizada"`
	FinishedAt *time.Time `json:"finished_at"`

	// Prazo estourado persistente (mesmo padrão de atraso da Carga)
	PrazoEstourado         bool       `gorm:"not null;default:false" json:"prazo_estourado"`
	PrazoEstouradoSegundos int        `gorm:"not null;default:0" json:"prazo_estourado_segundos"`
	ComentarioLateStow     *string    `gorm:"type:text" json:"comentario_late_stow"`
	ComentarioLateStowEm   *time.Time `json:"comentario_late_stow_em"`

	CreatedAt time.Time `json:"created_at"`
}
