package main

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

var (
	ErrNameRequired = errors.New("name is required")
	ErrNotFound     = errors.New("not found")
)

type Formation struct {
	ID        int64
	Name      string
	Type      PlayerType
	Players   []Player
	CreatedAt time.Time
}

type Play struct {
	ID          int64
	Name        string
	Type        PlayerType
	FormationID int64
	Formation   string
	Entities    Entities
	CreatedAt   time.Time
}

// Store keeps named formations and plays in a local SQLite file. It only
// ever sees extracted entities, never the action log.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func OpenStore(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// formationType is defense when any player is defensive, else offense.
func formationType(players []Player) PlayerType {
	for _, p := range players {
		if p.Type == PlayerDefense {
			return PlayerDefense
		}
	}
	return PlayerOffense
}

func (s *Store) SaveFormation(ctx context.Context, name string, entities Entities) (Formation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Formation{}, fmt.Errorf("formation %w", ErrNameRequired)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Formation{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	formation, err := insertFormation(ctx, tx, name, entities.Players, s.now())
	if err != nil {
		return Formation{}, err
	}
	if err := tx.Commit(); err != nil {
		return Formation{}, fmt.Errorf("commit: %w", err)
	}
	return formation, nil
}

func insertFormation(ctx context.Context, tx *sql.Tx, name string, players []Player, now time.Time) (Formation, error) {
	if players == nil {
		players = []Player{}
	}
	data, err := json.Marshal(players)
	if err != nil {
		return Formation{}, fmt.Errorf("encode players: %w", err)
	}
	kind := formationType(players)
	res, err := tx.ExecContext(ctx,
		`INSERT INTO formations (name, type, player_positions, created_at) VALUES (?, ?, ?, ?)`,
		name, string(kind), string(data), now.UTC().UnixMilli())
	if err != nil {
		return Formation{}, fmt.Errorf("insert formation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Formation{}, fmt.Errorf("formation id: %w", err)
	}
	return Formation{ID: id, Name: name, Type: kind, Players: players, CreatedAt: now.UTC()}, nil
}

// SavePlay stores the formation first and then the play that points at it.
func (s *Store) SavePlay(ctx context.Context, playName, formationName string, entities Entities) (Play, error) {
	playName = strings.TrimSpace(playName)
	formationName = strings.TrimSpace(formationName)
	if formationName == "" {
		return Play{}, fmt.Errorf("formation %w", ErrNameRequired)
	}
	if playName == "" {
		return Play{}, fmt.Errorf("play %w", ErrNameRequired)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Play{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	now := s.now()
	formation, err := insertFormation(ctx, tx, formationName, entities.Players, now)
	if err != nil {
		return Play{}, err
	}

	routes := entities.Routes
	if routes == nil {
		routes = []Route{}
	}
	playersJSON, err := json.Marshal(formation.Players)
	if err != nil {
		return Play{}, fmt.Errorf("encode players: %w", err)
	}
	routesJSON, err := json.Marshal(routes)
	if err != nil {
		return Play{}, fmt.Errorf("encode routes: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO plays (name, type, formation_id, player_positions, routes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		playName, string(formation.Type), formation.ID, string(playersJSON), string(routesJSON), now.UTC().UnixMilli())
	if err != nil {
		return Play{}, fmt.Errorf("insert play: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Play{}, fmt.Errorf("play id: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Play{}, fmt.Errorf("commit: %w", err)
	}
	return Play{
		ID:          id,
		Name:        playName,
		Type:        formation.Type,
		FormationID: formation.ID,
		Formation:   formation.Name,
		Entities:    Entities{Players: formation.Players, Routes: routes},
		CreatedAt:   now.UTC(),
	}, nil
}

func (s *Store) ListFormations(ctx context.Context) ([]Formation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, type, player_positions, created_at FROM formations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list formations: %w", err)
	}
	defer rows.Close()

	var out []Formation
	for rows.Next() {
		var (
			f       Formation
			kind    string
			players string
			created int64
		)
		if err := rows.Scan(&f.ID, &f.Name, &kind, &players, &created); err != nil {
			return nil, fmt.Errorf("scan formation: %w", err)
		}
		if err := json.Unmarshal([]byte(players), &f.Players); err != nil {
			return nil, fmt.Errorf("decode formation %d: %w", f.ID, err)
		}
		f.Type = PlayerType(kind)
		f.CreatedAt = time.UnixMilli(created).UTC()
		out = append(out, f)
	}
	return out, rows.Err()
}

const playColumns = `p.id, p.name, p.type, p.formation_id, f.name, p.player_positions, p.routes, p.created_at`

func (s *Store) ListPlays(ctx context.Context) ([]Play, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+playColumns+` FROM plays p JOIN formations f ON f.id = p.formation_id ORDER BY p.id`)
	if err != nil {
		return nil, fmt.Errorf("list plays: %w", err)
	}
	defer rows.Close()

	var out []Play
	for rows.Next() {
		play, err := scanPlay(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, play)
	}
	return out, rows.Err()
}

// GetPlay returns the most recent play saved under name.
func (s *Store) GetPlay(ctx context.Context, name string) (Play, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+playColumns+` FROM plays p JOIN formations f ON f.id = p.formation_id
		 WHERE p.name = ? ORDER BY p.id DESC LIMIT 1`, strings.TrimSpace(name))
	play, err := scanPlay(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Play{}, fmt.Errorf("play %q: %w", name, ErrNotFound)
	}
	return play, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlay(row rowScanner) (Play, error) {
	var (
		p       Play
		kind    string
		players string
		routes  string
		created int64
	)
	if err := row.Scan(&p.ID, &p.Name, &kind, &p.FormationID, &p.Formation, &players, &routes, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Play{}, err
		}
		return Play{}, fmt.Errorf("scan play: %w", err)
	}
	if err := json.Unmarshal([]byte(players), &p.Entities.Players); err != nil {
		return Play{}, fmt.Errorf("decode play %d players: %w", p.ID, err)
	}
	if err := json.Unmarshal([]byte(routes), &p.Entities.Routes); err != nil {
		return Play{}, fmt.Errorf("decode play %d routes: %w", p.ID, err)
	}
	p.Type = PlayerType(kind)
	p.CreatedAt = time.UnixMilli(created).UTC()
	return p, nil
}
