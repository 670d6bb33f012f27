package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/TurnosApp/turnos-api/internal/domain/schedule"
)

// AvailabilityCache guarda relatórios de disponibilidade no Redis, um por
// (empleado, servicio, fecha). Qualquer escrita de turno invalida o dia
// inteiro do empleado, porque cada servicio tem a própria grade de slots.
//
// O cache é opcional e best-effort: erro de Redis é logado e ignorado.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func NewAvailabilityCache(rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *AvailabilityCache {
	return &AvailabilityCache{
		rdb: rdb,
		ttl: ttl,
		log: log,
	}
}

func reportKey(employeeID, serviceID uint, fecha string) string {
	return fmt.Sprintf("disponibilidad:%d:%s:%d", employeeID, fecha, serviceID)
}

func dayPattern(employeeID uint, fecha string) string {
	return fmt.Sprintf("disponibilidad:%d:%s:*", employeeID, fecha)
}

func (c *AvailabilityCache) GetReport(
	ctx context.Context,
	employeeID, serviceID uint,
	fecha string,
) (*schedule.AvailabilityReport, bool) {

	raw, err := c.rdb.Get(ctx, reportKey(employeeID, serviceID, fecha)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("cache de disponibilidad: falha no GET")
		}
		return nil, false
	}

	var report schedule.AvailabilityReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, false
	}

	return &report, true
}

func (c *AvailabilityCache) SetReport(
	ctx context.Context,
	employeeID, serviceID uint,
	fecha string,
	report *schedule.AvailabilityReport,
) {
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, reportKey(employeeID, serviceID, fecha), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache de disponibilidad: falha no SET")
	}
}

// InvalidateDay apaga todos os relatórios do empleado na fecha, varrendo o
// padrão com SCAN para não bloquear o Redis.
func (c *AvailabilityCache) InvalidateDay(
	ctx context.Context,
	employeeID uint,
	fecha string,
) {
	iter := c.rdb.Scan(ctx, 0, dayPattern(employeeID, fecha), 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn().Err(err).Str("key", iter.Val()).Msg("cache de disponibilidad: falha no DEL")
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache de disponibilidad: falha no SCAN")
	}
}
