package server

import (
	"chessboard/src"
	"chessboard/src/logx"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrBoardNotFound = errors.New("board not found")

// BoardStore owns every board served over HTTP. Boards are not safe for
// concurrent use, so all access goes through the store lock.
type BoardStore struct {
	mu     sync.Mutex
	boards map[string]*src.GameBuilder
	logger logx.Logger
}

func NewBoardStore(logger logx.Logger) *BoardStore {
	return &BoardStore{boards: make(map[string]*src.GameBuilder), logger: logger}
}

func (s *BoardStore) Create(placement *string) (BoardView, error) {
	gb := src.NewBuilderBoard(s.logger)
	if placement == nil {
		gb.CreateClassic()
	} else if err := gb.CreateFromPlacement(*placement); err != nil {
		return BoardView{}, err
	}

	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards[id] = gb
	s.logger.Infof("board %s created", id)
	return newBoardView(id, gb.CurrentBoard()), nil
}

// With runs fn on the board while holding the store lock.
func (s *BoardStore) With(id string, fn func(gb *src.GameBuilder) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	gb, ok := s.boards[id]
	if !ok {
		return ErrBoardNotFound
	}
	return fn(gb)
}

func (s *BoardStore) View(id string) (BoardView, error) {
	var v BoardView
	err := s.With(id, func(gb *src.GameBuilder) error {
		v = newBoardView(id, gb.CurrentBoard())
		return nil
	})
	return v, err
}

func (s *BoardStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boards[id]; !ok {
		return ErrBoardNotFound
	}
	delete(s.boards, id)
	s.logger.Infof("board %s deleted", id)
	return nil
}

func (s *BoardStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.boards)
}
