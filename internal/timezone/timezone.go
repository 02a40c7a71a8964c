package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// LocalDayBoundsUTC devolve o dia local (00:00:00 até 23:59:59.999999)
// do instante de referência, convertido para UTC. É a janela do sync de
// transferências.
func LocalDayBoundsUTC(ref time.Time, tz string) (time.Time, time.Time) {
	loc := Location(tz)
	refLocal := ref.In(loc)

	inicio := time.Date(refLocal.Year(), refLocal.Month(), refLocal.Day(), 0, 0, 0, 0, loc)
	fim := time.Date(refLocal.Year(), refLocal.Month(), refLocal.Day(), 23, 59, 59, 999999000, loc)

	return inicio.UTC(), fim.UTC()
}

// UTCDayRange devolve o intervalo fechado [inicio 00:00:00, fim 23:59:59.999999]
// em UTC para um range de datas do dashboard.
func UTCDayRange(inicio, fim time.Time) (time.Time, time.Time) {
	i := time.Date(inicio.Year(), inicio.Month(), inicio.Day(), 0, 0, 0, 0, time.UTC)
	f := time.Date(fim.Year(), fim.Month(), fim.Day(), 23, 59, 59, 999999000, time.UTC)
	return i, f
}
