package backup

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	dumpPrefix = "coworkly-"
	dumpSuffix = ".sql"
)

type Service interface {
	// Create runs pg_dump and writes a timestamped dump file. Older dumps
	// beyond the retention count are pruned afterwards.
	Create(ctx context.Context) (*Info, error)
	List() ([]*Info, error)
	Restore(ctx context.Context, name string) error
	Delete(name string) error
}

type service struct {
	dsn  string
	dir  string
	keep int
	now  func() time.Time
}

func NewService(dsn, dir string, keep int) Service {
	return &service{dsn: dsn, dir: dir, keep: keep, now: time.Now}
}

func (s *service) Create(ctx context.Context) (*Info, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup directory: %w", err)
	}

	name := dumpPrefix + s.now().UTC().Format("20060102-150405") + dumpSuffix
	path := filepath.Join(s.dir, name)

	cmd := exec.CommandContext(ctx, "pg_dump", "--no-owner", "--clean", "--if-exists",
		"--dbname", s.dsn, "--file", path)
	if out, err := cmd.CombinedOutput(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("pg_dump failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat backup file: %w", err)
	}

	if err := s.prune(); err != nil {
		log.Warn().Err(err).Msg("failed to prune old backups")
	}

	log.Info().Str("backup", name).Int64("size", stat.Size()).Msg("database backup created")
	return &Info{Name: name, Size: stat.Size(), CreatedAt: stat.ModTime()}, nil
}

func (s *service) List() ([]*Info, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read backup directory: %w", err)
	}

	var backups []*Info
	for _, entry := range entries {
		if entry.IsDir() || !isDumpName(entry.Name()) {
			continue
		}
		stat, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, &Info{
			Name:      entry.Name(),
			Size:      stat.Size(),
			CreatedAt: stat.ModTime(),
		})
	}

	// Newest first.
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Name > backups[j].Name
	})
	return backups, nil
}

func (s *service) Restore(ctx context.Context, name string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, "psql", "--dbname", s.dsn, "--single-transaction",
		"--file", path)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("restore failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	log.Info().Str("backup", name).Msg("database restored from backup")
	return nil
}

func (s *service) Delete(name string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove backup file: %w", err)
	}
	return nil
}

// resolve validates a user-supplied backup name and returns its path.
// Names must match the dump naming scheme so path traversal is impossible.
func (s *service) resolve(name string) (string, error) {
	if !isDumpName(name) || name != filepath.Base(name) {
		return "", ErrInvalidName
	}
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("stat backup file: %w", err)
	}
	return path, nil
}

func (s *service) prune() error {
	if s.keep <= 0 {
		return nil
	}
	backups, err := s.List()
	if err != nil {
		return err
	}
	for _, b := range backups[min(s.keep, len(backups)):] {
		if err := os.Remove(filepath.Join(s.dir, b.Name)); err != nil {
			return err
		}
		log.Info().Str("backup", b.Name).Msg("pruned old backup")
	}
	return nil
}

func isDumpName(name string) bool {
	return strings.HasPrefix(name, dumpPrefix) && strings.HasSuffix(name, dumpSuffix)
}
