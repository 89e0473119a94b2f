package store

const schema = `
CREATE TABLE IF NOT EXISTS backups (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    kind TEXT NOT NULL,
    base_name TEXT,
    created_at TIMESTAMP NOT NULL,
    package_count INTEGER,
    path TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS backup_packages (
    backup_id INTEGER NOT NULL,
    package TEXT NOT NULL,
    file_count INTEGER,
    FOREIGN KEY (backup_id) REFERENCES backups(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_backups_name ON backups(name);
CREATE INDEX IF NOT EXISTS idx_backups_created ON backups(created_at);
CREATE INDEX IF NOT EXISTS idx_backup_packages ON backup_packages(backup_id);
`
