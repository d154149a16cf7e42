package usecase

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/entity"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/oracle"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/session"
)

// SessionManager keeps live sessions in memory, keyed by generated ID.
// Sessions are discarded as soon as their game finishes.
type SessionManager struct {
	logger *slog.Logger
	oracle *oracle.Oracle

	mu       sync.Mutex
	sessions map[string]*session.Session
}

func NewSessionManager(logger *slog.Logger, orc *oracle.Oracle) *SessionManager {
	return &SessionManager{
		logger: logger,
		oracle: orc,

		sessions: make(map[string]*session.Session),
	}
}

// CreateSession creates and starts a session, returning it together with
// the oracle's opening move.
func (that *SessionManager) CreateSession() (*session.Session, int, error) {
	log := that.logger.With("method", "CreateSession")

	sess := session.New(pkg.GenerateSessionID(), that.oracle)

	opening, err := sess.Start()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to start session: %w", err)
	}

	that.mu.Lock()
	that.sessions[sess.ID] = sess
	that.mu.Unlock()

	log.Info("session created", "session_id", sess.ID, "opening", opening)

	return sess, opening, nil
}

// Advance plays one exchange on the session: the opponent's cell in, the
// oracle's response out. A finished game removes the session.
func (that *SessionManager) Advance(id string, cell int) (int, *entity.Game, error) {
	log := that.logger.With("method", "Advance")

	sess, err := that.getSession(id)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to get session: %w", err)
	}

	response, err := sess.Advance(cell)
	if err != nil {
		return 0, sess.Game, fmt.Errorf("failed to advance session: %w", err)
	}

	if sess.Game.IsFinished() {
		that.removeSession(id)
		log.Info("session finished", "session_id", id, "winner", sess.Game.Winner)
	}

	return response, sess.Game, nil
}

// EndSession discards a session regardless of its game state.
func (that *SessionManager) EndSession(id string) {
	that.removeSession(id)
	that.logger.With("method", "EndSession").Info("session ended", "session_id", id)
}

func (that *SessionManager) getSession(id string) (*session.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	sess, ok := that.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	return sess, nil
}

func (that *SessionManager) removeSession(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.sessions, id)
}
