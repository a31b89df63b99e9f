package pg

import "fmt"

// Reset wipes all forum data. Used by the seed tool only.
func (s *Storage) Reset() error {
	if _, err := s.db.Exec("TRUNCATE threads, replies RESTART IDENTITY"); err != nil {
		return fmt.Errorf("failed to reset storage: %w", err)
	}
	return nil
}
