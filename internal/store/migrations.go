package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS notifications (
	id             TEXT PRIMARY KEY,
	position       INTEGER NOT NULL,
	title          TEXT NOT NULL,
	preview        TEXT NOT NULL DEFAULT '',
	full_details   TEXT NOT NULL DEFAULT '',
	submitted_at   DATETIME NOT NULL,
	expires_at     DATETIME NOT NULL,
	sender         TEXT NOT NULL DEFAULT '',
	status         TEXT NOT NULL DEFAULT 'unread' CHECK(status IN ('unread', 'read', 'urgent')),
	category       TEXT NOT NULL CHECK(category IN ('finance', 'hr', 'stock', 'alerts')),
	has_attachment INTEGER NOT NULL DEFAULT 0 CHECK(has_attachment IN (0, 1)),
	is_pinned      INTEGER NOT NULL DEFAULT 0 CHECK(is_pinned IN (0, 1))
);

CREATE INDEX IF NOT EXISTS idx_notifications_position ON notifications(position);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE INDEX IF NOT EXISTS idx_notifications_status ON notifications(status);
CREATE INDEX IF NOT EXISTS idx_notifications_category ON notifications(category);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}
