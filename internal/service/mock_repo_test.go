package service

import (
	"sync"

	"github.com/ericogr/robot-arena/internal/game"

	"gorm.io/gorm"
)

// mockRepo keeps copies of robots and contests so services only see what
// they explicitly persist.
type mockRepo struct {
	mu        sync.Mutex
	nextID    uint
	weapons   map[uint]game.Weapon
	robots    map[uint]*game.Robot
	contests  map[uint]*game.Contest
	finished  int
	winnerIDs []*uint
	createErr error
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		nextID:   100,
		weapons:  map[uint]game.Weapon{},
		robots:   map[uint]*game.Robot{},
		contests: map[uint]*game.Contest{},
	}
}

func (m *mockRepo) addWeapon(w game.Weapon) game.Weapon {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	w.ID = m.nextID
	m.weapons[w.ID] = w
	return w
}

func (m *mockRepo) addRobot(r *game.Robot) *game.Robot {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	r.ID = m.nextID
	m.robots[r.ID] = r.Clone()
	return r
}

func (m *mockRepo) stored(id uint) *game.Robot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.robots[id].Clone()
}

func (m *mockRepo) GetWeaponsByIDs(ids []uint) ([]game.Weapon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []game.Weapon
	for _, id := range ids {
		if w, ok := m.weapons[id]; ok {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *mockRepo) GetRobotByID(id uint) (*game.Robot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.robots[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.Clone(), nil
}

func (m *mockRepo) CreateRobot(r *game.Robot) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.addRobot(r)
	return nil
}

func (m *mockRepo) UpdateRobots(robots ...*game.Robot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range robots {
		m.robots[r.ID] = r.Clone()
	}
	return nil
}

func (m *mockRepo) CreateContest(c *game.Contest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = m.nextID
	if c.UUID == "" {
		c.UUID = "contest-uuid"
	}
	cp := *c
	m.contests[c.ID] = &cp
	return nil
}

func (m *mockRepo) GetContestByID(id uint) (*game.Contest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.contests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockRepo) UpdateContest(c *game.Contest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.contests[c.ID] = &cp
	return nil
}

func (m *mockRepo) FinishContest(c *game.Contest, winnerID *uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	m.contests[c.ID] = &cp
	m.finished++
	m.winnerIDs = append(m.winnerIDs, winnerID)
	for _, id := range []uint{c.ChallengerID, c.DefenderID} {
		r := m.robots[id]
		r.ContestsPlayed++
		if winnerID == nil {
			continue
		}
		if *winnerID == id {
			r.Wins++
		} else {
			r.Losses++
		}
	}
	return nil
}

func (m *mockRepo) FindPendingContestIDs(limit int) ([]uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []uint
	for id, c := range m.contests {
		if c.Status == game.StatusPending {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
