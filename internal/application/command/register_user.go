package command

import (
	"context"

	"github.com/alem-hub/university-records/internal/domain/person"
	"github.com/alem-hub/university-records/internal/domain/shared"
	"github.com/alem-hub/university-records/internal/domain/student"
	"github.com/alem-hub/university-records/internal/domain/teacher"
	"github.com/alem-hub/university-records/internal/domain/user"
	"github.com/alem-hub/university-records/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTER USER COMMAND
// Builds a user from its role tag and, for students and teachers, enters
// it into the registry. Administrators are returned but not registered:
// the registry has no place for them.
// ══════════════════════════════════════════════════════════════════════════════

// RegisterUserCommand contains the data to create a user.
type RegisterUserCommand struct {
	Role  person.Role
	Name  string
	ID    string
	Email string
}

// RegisterUserResult contains the created user.
type RegisterUserResult struct {
	User       user.User
	Registered bool
}

// RegisterUserHandler handles the RegisterUserCommand.
type RegisterUserHandler struct {
	deps    Deps
	factory *user.Factory
}

// NewRegisterUserHandler creates a new RegisterUserHandler. A nil factory
// means the zero Factory.
func NewRegisterUserHandler(deps Deps, factory *user.Factory) *RegisterUserHandler {
	if factory == nil {
		factory = &user.Factory{}
	}
	return &RegisterUserHandler{deps: deps.withDefaults("register_user"), factory: factory}
}

// Handle executes the register user command. An unknown role is a hard
// failure matching shared.ErrInvalidRole.
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	u, err := h.factory.Create(cmd.Role, cmd.Name, cmd.ID, cmd.Email)
	if err != nil {
		h.deps.Logger.Warn("rejected user", logger.Role(string(cmd.Role)), logger.Err(err))
		return nil, err
	}

	result := &RegisterUserResult{User: u}
	switch v := u.(type) {
	case *student.Student:
		h.deps.Registry.AddStudent(v)
		result.Registered = true
	case *teacher.Teacher:
		h.deps.Registry.AddTeacher(v)
		result.Registered = true
	}

	h.deps.Logger.Debug("user created",
		logger.Role(string(cmd.Role)),
		logger.String("id", cmd.ID),
		logger.Bool("registered", result.Registered),
	)

	if result.Registered {
		h.deps.publish(shared.NewUserRegisteredEvent(cmd.ID, string(cmd.Role), cmd.Name, cmd.Email))
	}

	return result, nil
}
