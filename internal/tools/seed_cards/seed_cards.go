package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Matthieu-Gauthier/octagon-sub000/internal/dbconfig"
)

// Snapshot mirrors the JSON export of an upcoming card
type Snapshot struct {
	Fighters []Fighter `json:"fighters"`
	Events   []Event   `json:"events"`
	Fights   []Fight   `json:"fights"`
}

type Fighter struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Nickname *string `json:"nickname"`
	Division string  `json:"division"`
	Wins     int     `json:"wins"`
	Losses   int     `json:"losses"`
	Draws    int     `json:"draws"`
}

type Event struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Date            string  `json:"date"`
	Location        string  `json:"location"`
	PrelimsStartAt  *string `json:"prelims_start_at"`
	MainCardStartAt *string `json:"main_card_start_at"`
}

type Fight struct {
	ID            string `json:"id"`
	EventID       string `json:"event_id"`
	FighterAID    string `json:"fighter_a_id"`
	FighterBID    string `json:"fighter_b_id"`
	Division      string `json:"division"`
	Rounds        int    `json:"rounds"`
	IsMainEvent   bool   `json:"is_main_event"`
	IsCoMainEvent bool   `json:"is_co_main_event"`
	IsMainCard    bool   `json:"is_main_card"`
}

func main() {
	path := "internal/assets/cards.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	// 1) Load the JSON snapshot
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read JSON: %v\n", err)
		os.Exit(1)
	}
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal JSON: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(context.Background(), cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Upsert in dependency order and count
	var inserted, skipped, errs int

	for _, f := range snapshot.Fighters {
		cmdTag, err := pool.Exec(context.Background(), `
            INSERT INTO fighters (id, name, nickname, division, wins, losses, draws)
            VALUES ($1,$2,$3,$4,$5,$6,$7)
            ON CONFLICT (id) DO NOTHING
        `, f.ID, f.Name, f.Nickname, f.Division, f.Wins, f.Losses, f.Draws)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting fighter %s: %v\n", f.ID, err)
			errs++
			continue
		}
		if cmdTag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}

	for _, e := range snapshot.Events {
		cmdTag, err := pool.Exec(context.Background(), `
            INSERT INTO events (id, name, date, location, status, prelims_start_at, main_card_start_at)
            VALUES ($1,$2,$3,$4,'SCHEDULED',$5,$6)
            ON CONFLICT (id) DO NOTHING
        `, e.ID, e.Name, e.Date, e.Location, e.PrelimsStartAt, e.MainCardStartAt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting event %s: %v\n", e.ID, err)
			errs++
			continue
		}
		if cmdTag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}

	for _, f := range snapshot.Fights {
		cmdTag, err := pool.Exec(context.Background(), `
            INSERT INTO fights (
              id, event_id, fighter_a_id, fighter_b_id, division, rounds,
              is_main_event, is_co_main_event, is_main_card, status
            ) VALUES (
              $1,$2,$3,$4,$5,$6,$7,$8,$9,'SCHEDULED'
            )
            ON CONFLICT (id) DO NOTHING
        `,
			f.ID, f.EventID, f.FighterAID, f.FighterBID, f.Division, f.Rounds,
			f.IsMainEvent, f.IsCoMainEvent, f.IsMainCard,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting fight %s: %v\n", f.ID, err)
			errs++
			continue
		}
		if cmdTag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}

	// 4) Print summary
	fmt.Printf(
		"Card seed complete: %d inserted, %d skipped, %d errors\n",
		inserted, skipped, errs,
	)
}
