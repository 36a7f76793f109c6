package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/ratel-online/unoplus/consts"
	"github.com/ratel-online/unoplus/uno/game"
	"github.com/sirupsen/logrus"
)

const fullDeckSize = 104

// Config holds the settings of one process. Values come from the environment,
// optionally pre-populated from a .env file.
type Config struct {
	HumanNames      []string
	ComputerPlayers int
	HandSize        int
	RecycleDiscards bool
	AIDelay         time.Duration
	Seed            int64
	LogLevel        logrus.Level
}

func Default() Config {
	return Config{
		HumanNames:      []string{"Player"},
		ComputerPlayers: 2,
		HandSize:        consts.StartingHandSize,
		AIDelay:         consts.AIDelay,
		LogLevel:        logrus.WarnLevel,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// environment and builds a validated Config from it. Missing files are fine.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: %v", consts.ErrorsConfigInvalid, err)
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	c := Default()
	var err error
	if names := getEnv("UNO_PLAYER_NAMES", ""); names != "" {
		c.HumanNames = splitNames(names)
	}
	if c.ComputerPlayers, err = getEnvInt("UNO_COMPUTER_PLAYERS", c.ComputerPlayers); err != nil {
		return Config{}, err
	}
	if c.HandSize, err = getEnvInt("UNO_HAND_SIZE", c.HandSize); err != nil {
		return Config{}, err
	}
	if c.RecycleDiscards, err = getEnvBool("UNO_RECYCLE_DISCARDS", c.RecycleDiscards); err != nil {
		return Config{}, err
	}
	delay, err := getEnvInt("UNO_AI_DELAY_MS", int(c.AIDelay/time.Millisecond))
	if err != nil {
		return Config{}, err
	}
	c.AIDelay = time.Duration(delay) * time.Millisecond
	seed, err := getEnvInt("UNO_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	c.Seed = int64(seed)
	if level := getEnv("UNO_LOG_LEVEL", ""); level != "" {
		if c.LogLevel, err = logrus.ParseLevel(level); err != nil {
			return Config{}, fmt.Errorf("%w: UNO_LOG_LEVEL: %v", consts.ErrorsConfigInvalid, err)
		}
	}
	return c, c.Validate()
}

func (c Config) Seats() int {
	return len(c.HumanNames) + c.ComputerPlayers
}

func (c Config) Validate() error {
	if c.ComputerPlayers < 0 {
		return fmt.Errorf("%w: negative computer players", consts.ErrorsConfigInvalid)
	}
	if c.Seats() < consts.MinPlayers || c.Seats() > consts.MaxPlayers {
		return fmt.Errorf("%w: need %d to %d seats, got %d", consts.ErrorsConfigInvalid, consts.MinPlayers, consts.MaxPlayers, c.Seats())
	}
	if c.HandSize < 1 {
		return fmt.Errorf("%w: hand size must be positive", consts.ErrorsConfigInvalid)
	}
	if c.Seats()*c.HandSize+1 > fullDeckSize {
		return fmt.Errorf("%w: %d seats with %d cards each do not fit in one deck", consts.ErrorsConfigInvalid, c.Seats(), c.HandSize)
	}
	if c.AIDelay < 0 {
		return fmt.Errorf("%w: negative AI delay", consts.ErrorsConfigInvalid)
	}
	return nil
}

func (c Config) Rules() game.Rules {
	return game.Rules{
		StartingHandSize: c.HandSize,
		RecycleDiscards:  c.RecycleDiscards,
	}
}

// Rand is seeded from Seed, or from the clock when Seed is zero.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (c Config) Logger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(c.LogLevel)
	return logger
}

func splitNames(value string) []string {
	names := make([]string, 0)
	for _, name := range strings.Split(value, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func getEnv(key, defVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defVal
}

func getEnvInt(key string, defVal int) (int, error) {
	v := getEnv(key, "")
	if v == "" {
		return defVal, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a number", consts.ErrorsConfigInvalid, key, v)
	}
	return i, nil
}

func getEnvBool(key string, defVal bool) (bool, error) {
	v := getEnv(key, "")
	if v == "" {
		return defVal, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", consts.ErrorsConfigInvalid, key, v)
	}
	return b, nil
}
