package dto

type TransferenciaListDTO struct {
	ID            uint   `json:"id"`
	AppointmentID string `json:"appointment_id"`

	ExpectedArrivalDate *string `json:"expected_arrival_date"`
	StatusCarga         string  `json:"status_carga"`

	Units   int `json:"units"`
	Cartons int `json:"cartons"`

	VRID             *string `json:"vrid"`
	Origem           *string `json:"origem"`
	LateStowDeadline *string `json:"late_stow_deadline"`

	InfoPreenchida bool    `json:"info_preenchida"`
	Finalizada     bool    `json:"finalizada"`
	FinishedAt     *string `json:"finished_at"`

	PrazoEstourado         bool `json:"prazo_estourado"`
	PrazoEstouradoSegundos int  `json:"prazo_estourado_segundos"`
	TempoPrazoSegundos     *int `json:"tempo_prazo_segundos"`

	ComentarioLateStow *string `json:"comentario_late_stow"`

	// pendente | preenchida | atrasada | finalizada
	StatusCard string `json:"status_card"`
}
