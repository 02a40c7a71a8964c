package carga

import "strings"

// ===============================
// Normalização de tipo de caminhão
// ===============================
//
// Tabela de-para da planilha → categoria do painel. Isso é dado de
// configuração, não lógica: valor não reconhecido mantém o valor cru
// como categoria (aparece no painel do jeito que veio).

const (
	TipoTransferencia = "Transferência"
	TipoCargaAvulsa   = "Carga Avulsa"
)

var tipoPorTruckType = map[string]string{
	"TRANSSHIP":     TipoTransferencia,
	"TRANSHIP":      TipoTransferencia,
	"TRANSFER":      TipoTransferencia,
	"TRANSFERENCIA": TipoTransferencia,
	"TRANSFERÊNCIA": TipoTransferencia,

	"OTHER":  TipoCargaAvulsa,
	"OTHERS": TipoCargaAvulsa,
	"CARP":   TipoCargaAvulsa,
	"CARGO":  TipoCargaAvulsa,
}

func NormalizeTruckType(raw string) string {
	key := strings.ToUpper(strings.TrimSpace(raw))
	if key == "" {
		return ""
	}
	if tipo, ok := tipoPorTruckType[key]; ok {
		return tipo
	}
	return strings.TrimSpace(raw)
}

// IsTransferType cobre tanto o tipo normalizado quanto o valor cru da
// planilha (registros antigos podem ter só o cru).
func IsTransferType(truckType, truckTipo string) bool {
	if truckTipo == TipoTransferencia {
		return true
	}
	return strings.ToUpper(strings.TrimSpace(truckType)) == "TRANSSHIP"
}
