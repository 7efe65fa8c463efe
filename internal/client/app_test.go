package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-mail-notes/internal/config"
	"github.com/MKhiriev/go-mail-notes/internal/logger"
	"github.com/MKhiriev/go-mail-notes/internal/mock"
	"github.com/MKhiriev/go-mail-notes/internal/service"
	"github.com/MKhiriev/go-mail-notes/internal/workers"
	"github.com/MKhiriev/go-mail-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testWorkers = config.ClientWorkers{MinDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}

type appMocks struct {
	registration *mock.MockClientRegistrationService
	engine       *mock.MockClientSyncEngine
	job          *mock.MockClientSyncJob
}

func newAppMocks(t *testing.T) (appMocks, *service.ClientServices) {
	ctrl := gomock.NewController(t)
	m := appMocks{
		registration: mock.NewMockClientRegistrationService(ctrl),
		engine:       mock.NewMockClientSyncEngine(ctrl),
		job:          mock.NewMockClientSyncJob(ctrl),
	}
	return m, &service.ClientServices{
		Registration: m.registration,
		SyncEngine:   m.engine,
		SyncJob:      m.job,
	}
}

func blockUntilDone(ctx context.Context) error {
	<-ctx.Done()
	return nil
}

func TestApp_Run_HeadlessBootstrapsThenSyncs(t *testing.T) {
	m, services := newAppMocks(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	creds := models.Credentials{Alias: "a@notes.example"}
	gomock.InOrder(
		m.registration.EXPECT().Bootstrap(gomock.Any()).Return(creds, nil),
		m.engine.EXPECT().SetAlias("a@notes.example"),
		m.job.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
			cancel()
			return blockUntilDone(ctx)
		}),
	)

	app := NewApp(services, nil, testWorkers, logger.Nop())
	require.NoError(t, app.Run(ctx))
}

func TestApp_Run_RetriesRegistration(t *testing.T) {
	m, services := newAppMocks(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		m.registration.EXPECT().Bootstrap(gomock.Any()).Return(models.Credentials{}, service.ErrNetwork).Times(2),
		m.registration.EXPECT().Bootstrap(gomock.Any()).Return(models.Credentials{Alias: "b@x"}, nil),
		m.engine.EXPECT().SetAlias("b@x"),
		m.job.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
			cancel()
			return blockUntilDone(ctx)
		}),
	)

	app := NewApp(services, nil, testWorkers, logger.Nop())
	require.NoError(t, app.Run(ctx))
	assert.Equal(t, testWorkers.MinDelay, app.backoff.CurrentDelay)
}

func TestApp_Run_CancelledDuringRegistration(t *testing.T) {
	m, services := newAppMocks(t)
	ctx, cancel := context.WithCancel(context.Background())

	m.registration.EXPECT().Bootstrap(gomock.Any()).DoAndReturn(func(context.Context) (models.Credentials, error) {
		cancel()
		return models.Credentials{}, service.ErrServer
	})

	app := NewApp(services, nil, config.ClientWorkers{MinDelay: time.Hour, MaxDelay: time.Hour}, logger.Nop())
	assert.NoError(t, app.Run(ctx))
}

func TestApp_Run_ClosingPanelStopsSync(t *testing.T) {
	m, services := newAppMocks(t)
	quit := make(chan struct{})

	m.registration.EXPECT().Bootstrap(gomock.Any()).Return(models.Credentials{Alias: "c@x"}, nil)
	m.engine.EXPECT().SetAlias("c@x")
	m.job.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(quit)
		return blockUntilDone(ctx)
	})

	ui := workers.Func(func(context.Context) error {
		<-quit
		return nil
	})

	app := NewApp(services, ui, testWorkers, logger.Nop())
	assert.NoError(t, app.Run(context.Background()))
}

func TestApp_Run_PanelErrorIsReturned(t *testing.T) {
	m, services := newAppMocks(t)
	boom := errors.New("could not open a new TTY")

	m.registration.EXPECT().Bootstrap(gomock.Any()).Return(models.Credentials{}, service.ErrNetwork).AnyTimes()

	ui := workers.Func(func(context.Context) error { return boom })

	app := NewApp(services, ui, testWorkers, logger.Nop())
	assert.ErrorIs(t, app.Run(context.Background()), boom)
}
