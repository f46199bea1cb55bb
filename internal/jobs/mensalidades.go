// Package jobs agenda as rotinas periódicas do back office.
package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/BruksfildServices01/academia-backoffice/internal/lock"
	"github.com/BruksfildServices01/academia-backoffice/internal/logger"
	"github.com/BruksfildServices01/academia-backoffice/internal/metrics"
	ucMensalidade "github.com/BruksfildServices01/academia-backoffice/internal/usecase/mensalidade"
)

const (
	DefaultSchedule = "0 6 * * *"

	sweepLockKey = "academia:varredura-mensalidades"
	sweepLockTTL = 30 * time.Minute
)

type generator interface {
	Execute(ctx context.Context, asOf time.Time) (ucMensalidade.GenerationSummary, error)
}

// MensalidadesJob roda a geração de mensalidades uma vez por dia.
type MensalidadesJob struct {
	gen    generator
	locker lock.Locker
	log    *logger.Logger

	cron    *cron.Cron
	running sync.Mutex
}

func NewMensalidadesJob(
	gen generator,
	locker lock.Locker,
	loc *time.Location,
	log *logger.Logger,
) *MensalidadesJob {
	if locker == nil {
		locker = lock.Noop{}
	}
	return &MensalidadesJob{
		gen:    gen,
		locker: locker,
		log:    log.With("job", "mensalidades"),
		cron:   cron.New(cron.WithLocation(loc)),
	}
}

// Start registra o agendamento e dispara o cron em background.
func (j *MensalidadesJob) Start(schedule string) error {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if _, err := j.cron.AddFunc(schedule, func() { j.Run(context.Background()) }); err != nil {
		return fmt.Errorf("agendar varredura %q: %w", schedule, err)
	}
	j.cron.Start()
	j.log.Infow("varredura agendada", "schedule", schedule)
	return nil
}

// Stop espera a execução em andamento terminar.
func (j *MensalidadesJob) Stop() {
	<-j.cron.Stop().Done()
}

// Run executa uma varredura. Nunca entra em pânico e nunca devolve erro:
// tudo é logado e contabilizado.
func (j *MensalidadesJob) Run(ctx context.Context) {
	// dois ticks no mesmo processo não se sobrepõem
	if !j.running.TryLock() {
		j.log.Warnw("varredura anterior ainda em execução; pulando")
		metrics.RecordSweepRun("sobreposta", 0)
		return
	}
	defer j.running.Unlock()

	start := time.Now()
	status := "ok"

	defer func() {
		if r := recover(); r != nil {
			status = "panic"
			j.log.Errorw("varredura entrou em pânico", "panic", r)
		}
		metrics.RecordSweepRun(status, time.Since(start).Seconds())
	}()

	release, ok, err := j.locker.TryLock(ctx, sweepLockKey, sweepLockTTL)
	if err != nil {
		status = "erro_lock"
		j.log.Errorw("não foi possível obter o lock da varredura", "error", err)
		return
	}
	if !ok {
		status = "ignorada"
		j.log.Infow("outra instância já está rodando a varredura")
		return
	}
	defer func() {
		if err := release(); err != nil {
			j.log.Warnw("lock da varredura não foi liberado; expira sozinho",
				"error", err, "ttl", sweepLockTTL.String())
		}
	}()

	sum, err := j.gen.Execute(ctx, time.Time{})
	if err != nil {
		status = "erro"
		j.log.Errorw("varredura de mensalidades falhou", "error", err)
		return
	}
	if sum.Falhas > 0 {
		status = "parcial"
	}

	j.log.Infow("varredura de mensalidades concluída",
		"selecionadas", sum.Selecionadas,
		"geradas", sum.Geradas,
		"existentes", sum.Existentes,
		"ignoradas", sum.Ignoradas,
		"falhas", sum.Falhas,
		"duracao", time.Since(start).String(),
	)
}
