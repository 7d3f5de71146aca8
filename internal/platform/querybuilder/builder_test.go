package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("player_name", "goals").
		From("player_match_stats").
		Where(Eq("match_id", int64(12)), IsNull("deleted_at")).
		OrderBy("player_name").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT player_name, goals FROM player_match_stats WHERE match_id = $1 AND deleted_at IS NULL ORDER BY player_name LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(12) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_GroupBy(t *testing.T) {
	query, _, err := Select("player_name", "SUM(goals)").
		From("player_match_stats").
		GroupBy("player_name").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT player_name, SUM(goals) FROM player_match_stats GROUP BY player_name"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
}

func TestInsertBuilder_Suffix(t *testing.T) {
	query, args, err := InsertInto("teams").
		Columns("id", "name").
		Values(int64(1), "Arsenal").
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO teams (id, name) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(1) || args[1] != "Arsenal" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("players").
		Set("goals", 3).
		SetExpr("updated_at", "NOW()").
		Where(Eq("name", "Kylian Mbappé")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE players SET goals = $1, updated_at = NOW() WHERE name = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != 3 || args[1] != "Kylian Mbappé" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID   int64  `db:"id"`
		Name string `db:"name"`
		Skip string `db:"-"`
	}

	query, args, err := InsertModel("teams", row{ID: 9, Name: "Bayern"}, "")
	if err != nil {
		t.Fatalf("build insert from model: %v", err)
	}

	wantQuery := "INSERT INTO teams (id, name) VALUES ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(9) || args[1] != "Bayern" {
		t.Fatalf("unexpected args: %+v", args)
	}
}
