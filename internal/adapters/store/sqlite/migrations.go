package sqlite

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

CREATE TABLE IF NOT EXISTS users (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	username   TEXT NOT NULL UNIQUE,
	first_name TEXT NOT NULL DEFAULT '',
	last_name  TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS task_lists (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	owner_id    INTEGER NOT NULL REFERENCES users(id),
	views       INTEGER NOT NULL DEFAULT 0,
	created_at  DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	completed  INTEGER NOT NULL DEFAULT 0 CHECK(completed IN (0, 1)),
	list_id    INTEGER NOT NULL REFERENCES task_lists(id) ON DELETE CASCADE,
	owner_id   INTEGER NOT NULL REFERENCES users(id),
	views      INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS user_relations (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	list_id    INTEGER NOT NULL REFERENCES task_lists(id) ON DELETE CASCADE,
	user_id    INTEGER NOT NULL REFERENCES users(id),
	owner_id   INTEGER NOT NULL REFERENCES users(id),
	role       TEXT NOT NULL DEFAULT 'guest',
	created_at DATETIME NOT NULL,
	UNIQUE(user_id, list_id)
);

CREATE TABLE IF NOT EXISTS task_comments (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	task_id     INTEGER NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
	owner_id    INTEGER NOT NULL REFERENCES users(id),
	views       INTEGER NOT NULL DEFAULT 0,
	created_at  DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS list_comments (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	list_id     INTEGER NOT NULL REFERENCES task_lists(id) ON DELETE CASCADE,
	owner_id    INTEGER NOT NULL REFERENCES users(id),
	views       INTEGER NOT NULL DEFAULT 0,
	created_at  DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS notifications (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	seen        INTEGER NOT NULL DEFAULT 0 CHECK(seen IN (0, 1)),
	seen_on     DATETIME,
	deep_link   TEXT NOT NULL,
	receiver_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	created_at  DATETIME NOT NULL,
	UNIQUE(receiver_id, title, deep_link)
);

CREATE INDEX IF NOT EXISTS idx_task_lists_owner ON task_lists(owner_id);
CREATE INDEX IF NOT EXISTS idx_tasks_list ON tasks(list_id);
CREATE INDEX IF NOT EXISTS idx_tasks_owner ON tasks(owner_id);
CREATE INDEX IF NOT EXISTS idx_user_relations_list ON user_relations(list_id);
CREATE INDEX IF NOT EXISTS idx_user_relations_owner ON user_relations(owner_id);
CREATE INDEX IF NOT EXISTS idx_task_comments_task ON task_comments(task_id);
CREATE INDEX IF NOT EXISTS idx_task_comments_owner ON task_comments(owner_id);
CREATE INDEX IF NOT EXISTS idx_list_comments_list ON list_comments(list_id);
CREATE INDEX IF NOT EXISTS idx_list_comments_owner ON list_comments(owner_id);
CREATE INDEX IF NOT EXISTS idx_notifications_receiver ON notifications(receiver_id, created_at);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
