package dto

type OperadorStatsDTO struct {
	Units        int     `json:"units"`
	Notas        int     `json:"notas"`
	Horas        float64 `json:"horas"`
	UnitsPorHora float64 `json:"units_por_hora"`
}

type AtrasoCargaDTO struct {
	ID               uint    `json:"id"`
	AppointmentID    string  `json:"appointment_id"`
	Status           string  `json:"status"`
	AtrasoSegundos   int     `json:"atraso_segundos"`
	AtrasoComentario *string `json:"atraso_comentario"`
}

type AtrasoTransferenciaDTO struct {
	ID                     uint    `json:"id"`
	AppointmentID          string  `json:"appointment_id"`
	Finalizada             bool    `json:"finalizada"`
	PrazoEstouradoSegundos int     `json:"prazo_estourado_segundos"`
	ComentarioLateStow     *string `json:"comentario_late_stow"`
}

type DashboardStatsDTO struct {
	TotalUnits       int `json:"total_units"`
	TotalUnitsNoShow int `json:"total_units_no_show"`

	TotalNotasFechadas  int `json:"total_notas_fechadas"`
	TotalNotasPendentes int `json:"total_notas_pendentes"`
	TotalNotasAndamento int `json:"total_notas_andamento"`
	TotalNotasDeletadas int `json:"total_notas_deletadas"`
	TotalNotasNoShow    int `json:"total_notas_no_show"`

	UnidadesPorDia      map[string]int `json:"unidades_por_dia"`
	NotasPorDia         map[string]int `json:"notas_por_dia"`
	NotasDeletadasPorDia map[string]int `json:"notas_deletadas_por_dia"`
	NoShowPorDia        map[string]int `json:"no_show_por_dia"`

	PorLogin map[string]OperadorStatsDTO `json:"por_login"`

	CargasAtrasadas         []AtrasoCargaDTO         `json:"cargas_atrasadas"`
	TransferenciasAtrasadas []AtrasoTransferenciaDTO `json:"transferencias_atrasadas"`
}

// EmptyDashboardStats é a resposta zerada (range ausente ou degrade).
func EmptyDashboardStats() DashboardStatsDTO {
	return DashboardStatsDTO{
		UnidadesPorDia:          map[string]int{},
		NotasPorDia:             map[string]int{},
		NotasDeletadasPorDia:    map[string]int{},
		NoShowPorDia:            map[string]int{},
		PorLogin:                map[string]OperadorStatsDTO{},
		CargasAtrasadas:         []AtrasoCargaDTO{},
		TransferenciasAtrasadas: []AtrasoTransferenciaDTO{},
	}
}
