package store

import (
	"database/sql"
	"fmt"
	"time"
)

// InsertBackup records a backup run and returns its ID.
func (s *Store) InsertBackup(b *Backup) (int64, error) {
	query := `
		INSERT INTO backups (name, kind, base_name, created_at, package_count, path)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.Exec(query,
		b.Name,
		b.Kind,
		b.BaseName,
		b.CreatedAt.Format(time.RFC3339),
		b.PackageCount,
		b.Path,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert backup %s: %w", b.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get backup ID: %w", err)
	}

	return id, nil
}

// InsertBackupPackage records one package pulled during a backup run.
func (s *Store) InsertBackupPackage(p *BackupPackage) error {
	query := `
		INSERT INTO backup_packages (backup_id, package, file_count)
		VALUES (?, ?, ?)
	`

	if _, err := s.db.Exec(query, p.BackupID, p.Package, p.FileCount); err != nil {
		return fmt.Errorf("failed to insert backup package %s: %w", p.Package, err)
	}

	return nil
}

// GetBackup retrieves a recorded backup run by ID.
func (s *Store) GetBackup(id int64) (*Backup, error) {
	query := `
		SELECT id, name, kind, base_name, created_at, package_count, path
		FROM backups
		WHERE id = ?
	`

	b, err := scanBackup(s.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("backup %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get backup %d: %w", id, err)
	}

	return b, nil
}

// ListBackups returns all recorded backup runs, newest first.
func (s *Store) ListBackups() ([]*Backup, error) {
	query := `
		SELECT id, name, kind, base_name, created_at, package_count, path
		FROM backups
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list backups: %w", err)
	}
	defer rows.Close()

	var backups []*Backup
	for rows.Next() {
		b, err := scanBackup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan backup: %w", err)
		}
		backups = append(backups, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate backups: %w", err)
	}

	return backups, nil
}

// ListBackupPackages returns the packages recorded for a backup run.
func (s *Store) ListBackupPackages(backupID int64) ([]*BackupPackage, error) {
	query := `
		SELECT backup_id, package, file_count
		FROM backup_packages
		WHERE backup_id = ?
		ORDER BY package
	`

	rows, err := s.db.Query(query, backupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list backup packages: %w", err)
	}
	defer rows.Close()

	var packages []*BackupPackage
	for rows.Next() {
		var p BackupPackage
		if err := rows.Scan(&p.BackupID, &p.Package, &p.FileCount); err != nil {
			return nil, fmt.Errorf("failed to scan backup package: %w", err)
		}
		packages = append(packages, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate backup packages: %w", err)
	}

	return packages, nil
}

// CountBackups returns the number of recorded backup runs.
func (s *Store) CountBackups() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM backups").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count backups: %w", err)
	}
	return count, nil
}

// scanner matches both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBackup(row scanner) (*Backup, error) {
	var b Backup
	var createdAt string

	err := row.Scan(&b.ID, &b.Name, &b.Kind, &b.BaseName, &createdAt, &b.PackageCount, &b.Path)
	if err != nil {
		return nil, err
	}

	b.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at for %s: %w", b.Name, err)
	}

	return &b, nil
}
