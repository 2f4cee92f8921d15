package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/goserg/padelclub/gen/model"
	"github.com/goserg/padelclub/gen/table"
	"github.com/goserg/padelclub/internal/config"
	"github.com/goserg/padelclub/internal/domain"
	sqlite3 "github.com/goserg/padelclub/internal/migrate"
	"github.com/goserg/padelclub/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.UserStorage = (*Storage)(nil)
var _ storage.GameStorage = (*Storage)(nil)
var _ storage.TrainingStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.Server) (*Storage, error) {
	log := l.WithField("from", "storage")
	db, err := sql.Open("sqlite3", buildSource(cfg.SqliteFile))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpServerDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("club storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_fk=1"
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		QueryContext(ctx, s.db, &users)
	if err != nil {
		return nil, err
	}
	return convertUsersToDomain(users)
}

func (s *Storage) GetUser(ctx context.Context, id uuid.UUID) (domain.User, error) {
	var user model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		WHERE(table.Users.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &user)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return convertUserToDomain(user)
}

func (s *Storage) GetUserByTelegram(ctx context.Context, handle string) (domain.User, error) {
	var user model.Users
	err := table.Users.
		SELECT(table.Users.AllColumns).
		FROM(table.Users).
		WHERE(table.Users.Telegram.EQ(sqlite.String(handle))).
		QueryContext(ctx, s.db, &user)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	return convertUserToDomain(user)
}

func (s *Storage) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	user.Version = 0
	var created model.Users
	err := table.Users.
		INSERT(table.Users.AllColumns).
		MODEL(convertUserFromDomain(user)).
		RETURNING(table.Users.AllColumns).
		QueryContext(ctx, s.db, &created)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.ErrConflict
		}
		return domain.User{}, err
	}
	return convertUserToDomain(created)
}

func (s *Storage) UpdateUser(ctx context.Context, user domain.User) (domain.User, error) {
	stored := convertUserFromDomain(user)
	stored.Version++
	res, err := table.Users.
		UPDATE(table.Users.MutableColumns).
		MODEL(stored).
		WHERE(
			table.Users.ID.EQ(sqlite.String(user.ID.String())).
				AND(table.Users.Version.EQ(sqlite.Int(user.Version))),
		).
		ExecContext(ctx, s.db)
	if err != nil {
		return domain.User{}, err
	}
	err = checkStamp(ctx, s.db, res, table.Users.Table, table.Users.ID, user.ID)
	if err != nil {
		return domain.User{}, err
	}
	user.Version = stored.Version
	return user, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res, err := table.Users.
		DELETE().
		WHERE(table.Users.ID.EQ(sqlite.String(id.String()))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Storage) ListGames(ctx context.Context) ([]domain.Game, error) {
	var games []model.Games
	err := table.Games.
		SELECT(table.Games.AllColumns).
		FROM(table.Games).
		QueryContext(ctx, s.db, &games)
	if err != nil {
		return nil, err
	}
	var players []model.GamePlayers
	err = table.GamePlayers.
		SELECT(table.GamePlayers.AllColumns).
		FROM(table.GamePlayers).
		ORDER_BY(table.GamePlayers.GameID.ASC(), table.GamePlayers.Position.ASC()).
		QueryContext(ctx, s.db, &players)
	if err != nil {
		return nil, err
	}
	return convertGamesToDomain(games, players)
}

func (s *Storage) GetGame(ctx context.Context, id uuid.UUID) (domain.Game, error) {
	var game model.Games
	err := table.Games.
		SELECT(table.Games.AllColumns).
		FROM(table.Games).
		WHERE(table.Games.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &game)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Game{}, domain.ErrNotFound
		}
		return domain.Game{}, err
	}
	var players []model.GamePlayers
	err = table.GamePlayers.
		SELECT(table.GamePlayers.AllColumns).
		FROM(table.GamePlayers).
		WHERE(table.GamePlayers.GameID.EQ(sqlite.String(id.String()))).
		ORDER_BY(table.GamePlayers.Position.ASC()).
		QueryContext(ctx, s.db, &players)
	if err != nil {
		return domain.Game{}, err
	}
	return convertGameToDomain(game, players)
}

func (s *Storage) CreateGame(ctx context.Context, game domain.Game) (domain.Game, error) {
	game.Version = 0
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Game{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = table.Games.
		INSERT(table.Games.AllColumns).
		MODEL(convertGameFromDomain(game)).
		ExecContext(ctx, tx)
	if err != nil {
		return domain.Game{}, err
	}
	err = insertGameRoster(ctx, tx, game)
	if err != nil {
		return domain.Game{}, err
	}
	err = tx.Commit()
	if err != nil {
		return domain.Game{}, err
	}
	return game, nil
}

func (s *Storage) UpdateGame(ctx context.Context, game domain.Game) (domain.Game, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Game{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stored := convertGameFromDomain(game)
	stored.Version++
	res, err := table.Games.
		UPDATE(table.Games.MutableColumns).
		MODEL(stored).
		WHERE(
			table.Games.ID.EQ(sqlite.String(game.ID.String())).
				AND(table.Games.Version.EQ(sqlite.Int(game.Version))),
		).
		ExecContext(ctx, tx)
	if err != nil {
		return domain.Game{}, err
	}
	err = checkStamp(ctx, tx, res, table.Games.Table, table.Games.ID, game.ID)
	if err != nil {
		return domain.Game{}, err
	}

	_, err = table.GamePlayers.
		DELETE().
		WHERE(table.GamePlayers.GameID.EQ(sqlite.String(game.ID.String()))).
		ExecContext(ctx, tx)
	if err != nil {
		return domain.Game{}, err
	}
	err = insertGameRoster(ctx, tx, game)
	if err != nil {
		return domain.Game{}, err
	}
	err = tx.Commit()
	if err != nil {
		return domain.Game{}, err
	}
	game.Version = stored.Version
	return game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id uuid.UUID) error {
	res, err := table.Games.
		DELETE().
		WHERE(table.Games.ID.EQ(sqlite.String(id.String()))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Storage) ListTrainings(ctx context.Context) ([]domain.Training, error) {
	var trainings []model.Trainings
	err := table.Trainings.
		SELECT(table.Trainings.AllColumns).
		FROM(table.Trainings).
		QueryContext(ctx, s.db, &trainings)
	if err != nil {
		return nil, err
	}
	var players []model.TrainingPlayers
	err = table.TrainingPlayers.
		SELECT(table.TrainingPlayers.AllColumns).
		FROM(table.TrainingPlayers).
		ORDER_BY(table.TrainingPlayers.TrainingID.ASC(), table.TrainingPlayers.Position.ASC()).
		QueryContext(ctx, s.db, &players)
	if err != nil {
		return nil, err
	}
	var waitlist []model.TrainingWaitlist
	err = table.TrainingWaitlist.
		SELECT(table.TrainingWaitlist.AllColumns).
		FROM(table.TrainingWaitlist).
		ORDER_BY(table.TrainingWaitlist.TrainingID.ASC(), table.TrainingWaitlist.Position.ASC()).
		QueryContext(ctx, s.db, &waitlist)
	if err != nil {
		return nil, err
	}
	return convertTrainingsToDomain(trainings, players, waitlist)
}

func (s *Storage) GetTraining(ctx context.Context, id uuid.UUID) (domain.Training, error) {
	var training model.Trainings
	err := table.Trainings.
		SELECT(table.Trainings.AllColumns).
		FROM(table.Trainings).
		WHERE(table.Trainings.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &training)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Training{}, domain.ErrNotFound
		}
		return domain.Training{}, err
	}
	var players []model.TrainingPlayers
	err = table.TrainingPlayers.
		SELECT(table.TrainingPlayers.AllColumns).
		FROM(table.TrainingPlayers).
		WHERE(table.TrainingPlayers.TrainingID.EQ(sqlite.String(id.String()))).
		ORDER_BY(table.TrainingPlayers.Position.ASC()).
		QueryContext(ctx, s.db, &players)
	if err != nil {
		return domain.Training{}, err
	}
	var waitlist []model.TrainingWaitlist
	err = table.TrainingWaitlist.
		SELECT(table.TrainingWaitlist.AllColumns).
		FROM(table.TrainingWaitlist).
		WHERE(table.TrainingWaitlist.TrainingID.EQ(sqlite.String(id.String()))).
		ORDER_BY(table.TrainingWaitlist.Position.ASC()).
		QueryContext(ctx, s.db, &waitlist)
	if err != nil {
		return domain.Training{}, err
	}
	return convertTrainingToDomain(training, players, waitlist)
}

func (s *Storage) CreateTraining(ctx context.Context, training domain.Training) (domain.Training, error) {
	training.Version = 0
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Training{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = table.Trainings.
		INSERT(table.Trainings.AllColumns).
		MODEL(convertTrainingFromDomain(training)).
		ExecContext(ctx, tx)
	if err != nil {
		return domain.Training{}, err
	}
	err = insertTrainingRoster(ctx, tx, training)
	if err != nil {
		return domain.Training{}, err
	}
	err = tx.Commit()
	if err != nil {
		return domain.Training{}, err
	}
	return training, nil
}

func (s *Storage) UpdateTraining(ctx context.Context, training domain.Training) (domain.Training, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Training{}, err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stored := convertTrainingFromDomain(training)
	stored.Version++
	res, err := table.Trainings.
		UPDATE(table.Trainings.MutableColumns).
		MODEL(stored).
		WHERE(
			table.Trainings.ID.EQ(sqlite.String(training.ID.String())).
				AND(table.Trainings.Version.EQ(sqlite.Int(training.Version))),
		).
		ExecContext(ctx, tx)
	if err != nil {
		return domain.Training{}, err
	}
	err = checkStamp(ctx, tx, res, table.Trainings.Table, table.Trainings.ID, training.ID)
	if err != nil {
		return domain.Training{}, err
	}

	_, err = table.TrainingPlayers.
		DELETE().
		WHERE(table.TrainingPlayers.TrainingID.EQ(sqlite.String(training.ID.String()))).
		ExecContext(ctx, tx)
	if err != nil {
		return domain.Training{}, err
	}
	_, err = table.TrainingWaitlist.
		DELETE().
		WHERE(table.TrainingWaitlist.TrainingID.EQ(sqlite.String(training.ID.String()))).
		ExecContext(ctx, tx)
	if err != nil {
		return domain.Training{}, err
	}
	err = insertTrainingRoster(ctx, tx, training)
	if err != nil {
		return domain.Training{}, err
	}
	err = tx.Commit()
	if err != nil {
		return domain.Training{}, err
	}
	training.Version = stored.Version
	return training, nil
}

func insertGameRoster(ctx context.Context, tx *sql.Tx, game domain.Game) error {
	if len(game.Participants) == 0 {
		return nil
	}
	_, err := table.GamePlayers.
		INSERT(table.GamePlayers.AllColumns).
		MODELS(convertGameRosterFromDomain(game)).
		ExecContext(ctx, tx)
	return err
}

func insertTrainingRoster(ctx context.Context, tx *sql.Tx, training domain.Training) error {
	if len(training.Participants) > 0 {
		_, err := table.TrainingPlayers.
			INSERT(table.TrainingPlayers.AllColumns).
			MODELS(convertTrainingRosterFromDomain(training)).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
	}
	if len(training.Waitlist) > 0 {
		_, err := table.TrainingWaitlist.
			INSERT(table.TrainingWaitlist.AllColumns).
			MODELS(convertTrainingWaitlistFromDomain(training)).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
	}
	return nil
}

// checkStamp tells a stale version apart from a missing row after a
// version-guarded UPDATE touched nothing.
func checkStamp(ctx context.Context, db qrm.DB, res sql.Result, tbl sqlite.Table, idColumn sqlite.ColumnString, id uuid.UUID) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	var dest struct{ Count int64 }
	err = sqlite.
		SELECT(sqlite.COUNT(idColumn).AS("count")).
		FROM(tbl).
		WHERE(idColumn.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, db, &dest)
	if err != nil {
		return err
	}
	if dest.Count == 0 {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
