// Package main runs the university records demonstration: a registrar
// creates a course, a teacher takes it on, a student enrolls and gets
// graded, then the records are printed.
//
// Records go to stdout, logs go to stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alem-hub/university-records/config"
	"github.com/alem-hub/university-records/internal/application/command"
	"github.com/alem-hub/university-records/internal/application/eventhandler"
	"github.com/alem-hub/university-records/internal/application/query"
	"github.com/alem-hub/university-records/internal/domain/admin"
	"github.com/alem-hub/university-records/internal/domain/gpa"
	"github.com/alem-hub/university-records/internal/domain/person"
	"github.com/alem-hub/university-records/internal/domain/shared"
	"github.com/alem-hub/university-records/internal/domain/university"
	"github.com/alem-hub/university-records/internal/domain/user"
	"github.com/alem-hub/university-records/internal/infrastructure/messaging"
	"github.com/alem-hub/university-records/internal/interface/console/presenter"
	"github.com/alem-hub/university-records/pkg/logger"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. LOGGING
	// ─────────────────────────────────────────────────────────────────────────
	log := logger.New(logger.Options{
		Output:    stderr,
		Level:     logger.ParseLevel(cfg.Log.Level),
		Format:    cfg.Log.Format,
		AddCaller: cfg.IsDevelopment(),
	}).With(
		logger.String("app", cfg.App.Name),
		logger.String("env", string(cfg.App.Environment)),
	)
	log.Info("starting university records")

	// ─────────────────────────────────────────────────────────────────────────
	// 2. EVENT BUS
	// ─────────────────────────────────────────────────────────────────────────
	var publisher shared.EventPublisher = shared.NopPublisher{}
	var audit *eventhandler.AuditLog
	if cfg.Events.Enabled {
		bus := messaging.NewInMemoryEventBus(messaging.InMemoryEventBusConfig{
			Logger:        log,
			EnableMetrics: true,
		})
		defer func() {
			snap := bus.Metrics().Snapshot()
			log.Info("event bus stopped",
				logger.F("published", snap.TotalPublished),
				logger.F("handler_failures", snap.HandlerFailures),
			)
			_ = bus.Close()
		}()

		audit = eventhandler.NewAuditLog(log, eventhandler.DefaultAuditLogConfig())
		if err := audit.Register(bus); err != nil {
			return fmt.Errorf("failed to register audit log: %w", err)
		}
		publisher = bus
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 3. APPLICATION
	// ─────────────────────────────────────────────────────────────────────────
	factory := &user.Factory{Strategy: gpa.Default()}
	if cfg.Notifications.Stdout {
		factory.Notifications = stdout
	}

	deps := command.Deps{
		Registry:  university.New(),
		Publisher: publisher,
		Logger:    log,
	}

	if err := demo(ctx, deps, factory, stdout); err != nil {
		return err
	}

	if audit != nil {
		log.Debug("audit trail", logger.Int("entries", len(audit.Entries())))
	}
	log.Info("done")
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DEMONSTRATION
// ══════════════════════════════════════════════════════════════════════════════

func demo(ctx context.Context, deps command.Deps, factory *user.Factory, out io.Writer) error {
	register := command.NewRegisterUserHandler(deps, factory)

	registered, err := register.Handle(ctx, command.RegisterUserCommand{Role: person.RoleAuthority, Name: "Registrar", ID: "A01", Email: "admin@uni.edu"})
	if err != nil {
		return err
	}
	registrar, ok := registered.User.(*admin.Administrator)
	if !ok {
		return errors.New("registrar is not an administrator")
	}

	if _, err := register.Handle(ctx, command.RegisterUserCommand{Role: person.RoleStudent, Name: "MS Dhoni", ID: "S01", Email: "msdhoni7@uni.edu"}); err != nil {
		return err
	}
	if _, err := register.Handle(ctx, command.RegisterUserCommand{Role: person.RoleTeacher, Name: "Goutam Gambhir", ID: "T01", Email: "gg5@uni.edu"}); err != nil {
		return err
	}

	if _, err := command.NewCreateCourseHandler(deps).Handle(ctx, command.CreateCourseCommand{
		Administrator: registrar,
		Code:          "CSE110",
		Name:          "Intro to Programming",
		Credit:        3,
	}); err != nil {
		return err
	}

	if _, err := command.NewAssignCourseHandler(deps).Handle(ctx, command.AssignCourseCommand{TeacherID: "T01", CourseCode: "CSE110"}); err != nil {
		return err
	}

	enrolled, err := command.NewEnrollStudentHandler(deps).Handle(ctx, command.EnrollStudentCommand{StudentID: "S01", CourseCode: "CSE110"})
	if err != nil {
		return err
	}
	if enrolled.Outcome == command.OutcomeRefused {
		fmt.Fprintln(out, enrolled.Message)
	}

	// The grade goes in under CSE101 while the student is enrolled in
	// CSE110, so it is refused.
	graded, err := command.NewAssignGradeHandler(deps).Handle(ctx, command.AssignGradeCommand{
		TeacherID:  "T01",
		StudentID:  "S01",
		CourseCode: "CSE101",
		Grade:      4.0,
	})
	if err != nil {
		return err
	}
	if graded.Outcome == command.OutcomeRefused {
		fmt.Fprintln(out, graded.Message)
	}

	transcript, err := query.NewGetTranscriptHandler(deps.Registry).Handle(ctx, query.GetTranscriptQuery{StudentID: "S01"})
	if err != nil {
		return err
	}
	roster, err := query.NewGetRosterHandler(deps.Registry).Handle(ctx, query.GetRosterQuery{CourseCode: "CSE110"})
	if err != nil {
		return err
	}
	listing, err := query.NewListRegistryHandler(deps.Registry).Handle(ctx, query.ListRegistryQuery{})
	if err != nil {
		return err
	}

	for _, block := range []string{
		presenter.StudentCourses(transcript),
		presenter.StudentGrades(transcript),
		presenter.GPA(transcript),
		presenter.CourseRoster(roster),
		presenter.RegistryStudents(listing),
		presenter.RegistryCourses(listing),
		presenter.RegistryTeachers(listing),
	} {
		if _, err := io.WriteString(out, block); err != nil {
			return err
		}
	}
	return nil
}
