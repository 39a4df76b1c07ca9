package migration

import (
	"fmt"
	"strings"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Revision is one link of the schema history. DownRevision is the revision
// the database must be at before Up runs, and the one it returns to after Down.
type Revision struct {
	ID           string
	DownRevision string
	Description  string
	Up           []migrationStep
	Down         []migrationStep
}

// revisions is the managed chain, oldest first. Its first DownRevision is the
// head of the history this service does not own.
var revisions = []Revision{
	amalgamationOut,
}

// createEnumSQL creates a Postgres enum unless a type of that name already exists.
func createEnumSQL(name string, values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return fmt.Sprintf(`DO $$
BEGIN
  CREATE TYPE %s AS ENUM (%s);
EXCEPTION
  WHEN duplicate_object THEN NULL;
END
$$;`, name, strings.Join(quoted, ", "))
}

func checkChain(chain []Revision) error {
	for i := 1; i < len(chain); i++ {
		if chain[i].DownRevision != chain[i-1].ID {
			return fmt.Errorf("revision %s: down revision %s does not match %s",
				chain[i].ID, chain[i].DownRevision, chain[i-1].ID)
		}
	}
	return nil
}
