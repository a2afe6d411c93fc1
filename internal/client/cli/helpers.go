package cli

import (
	"fmt"
	"strings"

	"github.com/quartersapp/quarters/internal/client/iocli"
	"github.com/quartersapp/quarters/internal/models"
)

// toInt приводит значение снапшота к int. Свежесозданное состояние
// хранит int, прочитанное из bbolt - float64 после JSON.
func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

// stringFromState возвращает строковое поле состояния
func stringFromState(state map[string]any, key string) string {
	s, _ := state[key].(string)
	return s
}

// playersFromState возвращает игроков снапшота. Элементы - те же map,
// что лежат в state, поэтому их можно менять на месте.
func playersFromState(state map[string]any) []map[string]any {
	raw, ok := state["players"].([]any)
	if !ok {
		return nil
	}
	players := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if player, ok := entry.(map[string]any); ok {
			players = append(players, player)
		}
	}
	return players
}

// splitPlayers разбирает список имен через запятую, отбрасывая пустые
func splitPlayers(raw string) []string {
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// formatCents форматирует сумму в центах как доллары: 125 -> $1.25
func formatCents(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// reportSyncOutcome печатает итог прохода очереди после команды
func reportSyncOutcome(out iocli.IO, result models.ProcessResult) {
	switch {
	case result.Offline:
		out.Println("Offline: changes are queued and will sync when the server is reachable.")
	case result.Skipped:
		out.Println("Sync already in progress.")
	case len(result.RetryingIDs) > 0:
		out.Printf("Synced %d change(s), %d still waiting for retry.\n", result.SyncedCount, len(result.RetryingIDs))
	case result.FailedCount > 0:
		out.Printf("Synced %d change(s), %d failed, see 'quarters status'.\n", result.SyncedCount, result.FailedCount)
	default:
		out.Println("All changes delivered to the server.")
	}
}
