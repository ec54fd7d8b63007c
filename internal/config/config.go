package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ericogr/robot-arena/internal/engine"
	"github.com/ericogr/robot-arena/internal/game"
	"github.com/ericogr/robot-arena/internal/keys"

	"gopkg.in/yaml.v3"
)

const (
	defaultServerAddress      = ":8080"
	defaultMaxTurns           = 200
	defaultContestScanSeconds = 5
)

type weaponEntry struct {
	Name         string `json:"name" yaml:"name"`
	Damage       int    `json:"damage" yaml:"damage"`
	Durability   int    `json:"durability" yaml:"durability"`
	CausesFreeze bool   `json:"causes_freeze" yaml:"causes_freeze"`
}

type robotEntry struct {
	Name        string   `json:"name" yaml:"name"`
	Damage      int      `json:"damage" yaml:"damage"`
	Health      int      `json:"health" yaml:"health"`
	AttackSpeed int      `json:"attack_speed" yaml:"attack_speed"`
	Weapons     []string `json:"weapons" yaml:"weapons"`
}

type rawConfig struct {
	WeaponList []weaponEntry `json:"weapon_list" yaml:"weapon_list"`
	RobotList  []robotEntry  `json:"robot_list" yaml:"robot_list"`
	Server     *struct {
		Address string `json:"address" yaml:"address"`
	} `json:"server" yaml:"server"`
	// RechargeAmount overrides engine.DefaultRechargeAmount when set.
	RechargeAmount *int `json:"recharge_amount" yaml:"recharge_amount"`
	// MaxTurns caps the number of attack attempts in a contest.
	MaxTurns int `json:"max_turns" yaml:"max_turns"`
	// ContestScanIntervalSeconds controls how often pending contests are resolved.
	ContestScanIntervalSeconds int `json:"contest_scan_interval_seconds" yaml:"contest_scan_interval_seconds"`
}

// RobotSeed describes a robot to create at startup. Weapons reference
// weapon templates by name, in the order the robot carries them.
type RobotSeed struct {
	Name        string
	Damage      int
	Health      int
	AttackSpeed int
	Weapons     []string
}

// LoadedConfig contains the weapons and robots to seed plus server settings.
type LoadedConfig struct {
	Weapons             []game.Weapon
	Robots              []RobotSeed
	ServerAddress       string
	RechargeAmount      int
	MaxTurns            int
	ContestScanInterval time.Duration
}

// LoadConfig reads the configuration file at path. Files ending in .yaml or
// .yml are parsed as YAML, anything else as JSON. The key `weapon_list` is
// required.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &rc)
	default:
		err = json.Unmarshal(b, &rc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return build(path, &rc)
}

func build(path string, rc *rawConfig) (*LoadedConfig, error) {
	if len(rc.WeaponList) == 0 {
		return nil, fmt.Errorf("config file %s: weapon_list is empty (provide 'weapon_list' array)", path)
	}

	weapons := make([]game.Weapon, 0, len(rc.WeaponList))
	weaponSet := make(map[string]struct{}, len(rc.WeaponList))
	for _, w := range rc.WeaponList {
		name := strings.TrimSpace(w.Name)
		if name == "" {
			return nil, fmt.Errorf("config file %s: weapon entry missing 'name'", path)
		}
		key := keys.NameKey(name)
		if _, exists := weaponSet[key]; exists {
			return nil, fmt.Errorf("config file %s: duplicate weapon name '%s'", path, name)
		}
		weaponSet[key] = struct{}{}
		if w.Damage < 0 {
			return nil, fmt.Errorf("config file %s: weapon '%s' has negative damage", path, name)
		}
		if w.Durability <= 0 {
			return nil, fmt.Errorf("config file %s: weapon '%s' needs a positive durability", path, name)
		}
		weapons = append(weapons, game.Weapon{Name: name, Damage: w.Damage, Durability: w.Durability, CausesFreeze: w.CausesFreeze})
	}

	robots := make([]RobotSeed, 0, len(rc.RobotList))
	robotSet := make(map[string]struct{}, len(rc.RobotList))
	for _, r := range rc.RobotList {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, fmt.Errorf("config file %s: robot entry missing 'name'", path)
		}
		key := keys.NameKey(name)
		if _, exists := robotSet[key]; exists {
			return nil, fmt.Errorf("config file %s: duplicate robot name '%s'", path, name)
		}
		robotSet[key] = struct{}{}
		if r.Damage < 0 || r.Health <= 0 {
			return nil, fmt.Errorf("config file %s: robot '%s' needs damage >= 0 and health > 0", path, name)
		}
		for _, wn := range r.Weapons {
			if _, ok := weaponSet[keys.NameKey(wn)]; !ok {
				return nil, fmt.Errorf("config file %s: robot '%s' references unknown weapon '%s'", path, name, wn)
			}
		}
		speed := r.AttackSpeed
		if speed < 0 {
			speed = 0
		}
		robots = append(robots, RobotSeed{Name: name, Damage: r.Damage, Health: r.Health, AttackSpeed: speed, Weapons: append([]string(nil), r.Weapons...)})
	}

	recharge := engine.DefaultRechargeAmount
	if rc.RechargeAmount != nil {
		if *rc.RechargeAmount < 0 {
			return nil, fmt.Errorf("config file %s: recharge_amount must not be negative", path)
		}
		recharge = *rc.RechargeAmount
	}

	addr := defaultServerAddress
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}
	maxTurns := rc.MaxTurns
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}
	scan := rc.ContestScanIntervalSeconds
	if scan <= 0 {
		scan = defaultContestScanSeconds
	}

	return &LoadedConfig{
		Weapons:             weapons,
		Robots:              robots,
		ServerAddress:       addr,
		RechargeAmount:      recharge,
		MaxTurns:            maxTurns,
		ContestScanInterval: time.Duration(scan) * time.Second,
	}, nil
}
