package player

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ratel-online/unoplus/consts"
	"github.com/ratel-online/unoplus/uno/game"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// CreatePlayers seats the humans first, in the given order, followed by
// computers named from the bot roster. r picks the bot names; nil uses the
// process-wide generator.
func CreatePlayers(humanNames []string, computers int, r *rand.Rand) ([]*game.Player, error) {
	total := len(humanNames) + computers
	if computers < 0 || total < consts.MinPlayers || total > consts.MaxPlayers {
		return nil, fmt.Errorf("%w: need %d to %d seats, got %d humans and %d computers",
			consts.ErrorsGamePlayersInvalid, consts.MinPlayers, consts.MaxPlayers, len(humanNames), computers)
	}
	players := make([]*game.Player, 0, total)
	taken := make(map[string]bool, total)
	for _, name := range humanNames {
		name = strings.TrimSpace(name)
		if name == "" || taken[name] {
			return nil, fmt.Errorf("%w: bad human name %q", consts.ErrorsGamePlayersInvalid, name)
		}
		taken[name] = true
		players = append(players, game.NewHumanPlayer(name))
	}
	return append(players, generateBots(computers, taken, r)...), nil
}

func generateBots(amount int, taken map[string]bool, r *rand.Rand) []*game.Player {
	shuffle := rand.Shuffle
	if r != nil {
		shuffle = r.Shuffle
	}
	names := make([]string, 0, len(botNames))
	for _, name := range botNames {
		if !taken[name] {
			names = append(names, name)
		}
	}
	shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })
	bots := make([]*game.Player, 0, amount)
	for _, botName := range names[:amount] {
		bots = append(bots, game.NewComputerPlayer(botName))
	}
	return bots
}
