package session

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/they4kman/tsweep/game"
)

const maxSnapshotSuffix = 100

func (s *Session) saveSnapshot(now time.Time) {
	if s.snapshotsDir == "" {
		return
	}
	log := s.log.WithField("dir", s.snapshotsDir)

	path, err := writeSnapshot(s.snapshotsDir, s.board, now)
	if err != nil {
		log.WithError(err).Warn("Could not save board snapshot")
		return
	}
	log.WithField("path", path).Info("Saved board snapshot")
}

func writeSnapshot(dir string, board *game.Board, t time.Time) (string, error) {
	stat, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", errors.WithStack(err)
		}
		if err := os.MkdirAll(dir, 0o777); err != nil {
			return "", errors.Wrap(err, "create snapshots directory")
		}
	} else if !stat.Mode().IsDir() {
		return "", errors.Errorf("%s is not a directory; cannot save snapshots to it", dir)
	}

	serialized, err := board.Snapshot().Serialize()
	if err != nil {
		return "", err
	}

	base := snapshotFilename(board, t)
	for i := 0; i < maxSnapshotSuffix; i++ {
		name := base
		if i > 0 {
			name = base + "_" + strconv.Itoa(i)
		}
		path := filepath.Join(dir, name+".yaml")

		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return "", errors.Wrap(err, "create snapshot")
		}
		_, err = file.WriteString(serialized)
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		return path, errors.Wrap(err, "write snapshot")
	}
	return "", errors.Errorf("too many snapshots named %s", base)
}

// snapshotFilename is the timestamp and outcome, without extension.
func snapshotFilename(board *game.Board, t time.Time) string {
	outcome := "loss"
	if board.State() == game.Won {
		outcome = "win"
	}
	return t.Format("20060102_150405_") + outcome
}
