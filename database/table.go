package database

import (
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/unoplus/consts"
	"github.com/ratel-online/unoplus/uno/game"
)

var tableIds int64 = 0
var tables = hashmap.New()

// Table is one running game.
type Table struct {
	ID        int64      `json:"id"`
	Game      *game.Game `json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (t *Table) String() string {
	return fmt.Sprintf("table[%d] game %s", t.ID, t.Game.ID())
}

func CreateTable(g *game.Game) (*Table, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: no game", consts.ErrorsTableInvalid)
	}
	table := &Table{
		ID:        atomic.AddInt64(&tableIds, 1),
		Game:      g,
		CreatedAt: time.Now(),
	}
	tables.Set(table.ID, table)
	log.Infof("%s created\n", table)
	return table, nil
}

func GetTable(tableId int64) *Table {
	if v, ok := tables.Get(tableId); ok {
		return v.(*Table)
	}
	return nil
}

func DeleteTable(tableId int64) error {
	table := GetTable(tableId)
	if table == nil {
		return fmt.Errorf("%w: no table %d", consts.ErrorsTableInvalid, tableId)
	}
	tables.Del(tableId)
	log.Infof("%s deleted\n", table)
	return nil
}

func GetTables() []*Table {
	list := make([]*Table, 0)
	tables.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Table))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}
