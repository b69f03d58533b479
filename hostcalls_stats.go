// hostcalls_stats.go - stats.* host calls
//
// Every score/progress call appends a timestamped record to the
// guest's own "data/<author>/<app>/stats.log"
// rather than overwriting, so a guest can replay its own history; the
// best-score read is a small scan over that log rather than a second
// maintained index, since the log is expected to stay small.

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const statsFile = "stats.log"

func (s *HostState) appendStatsRecord(kind string, value int64) error {
	path := s.dataPath([]string{statsFile})
	existing, _ := s.Device().FS().OpenFile(path)
	line := fmt.Sprintf("%d %s %d\n", s.Device().Now().Unix(), kind, value)
	return s.Device().FS().CreateFile(path, append(existing, []byte(line)...))
}

// statsAddScore implements stats.add_score(value).
func statsAddScore(s *HostState, value int64) uint32 {
	s.recordCall("stats.add_score")
	if err := s.appendStatsRecord("score", value); err != nil {
		s.logError(ErrFileWrite, "add_score: "+err.Error())
		return 0
	}
	return 1
}

// statsAddProgress implements stats.add_progress(value).
func statsAddProgress(s *HostState, value int64) uint32 {
	s.recordCall("stats.add_progress")
	if err := s.appendStatsRecord("progress", value); err != nil {
		s.logError(ErrFileWrite, "add_progress: "+err.Error())
		return 0
	}
	return 1
}

// statsGetBestScore implements stats.get_best_score() -> i64, the
// largest "score" value recorded in the guest's stats log, or 0 if
// none exists.
func statsGetBestScore(s *HostState) int64 {
	s.recordCall("stats.get_best_score")
	path := s.dataPath([]string{statsFile})
	data, err := s.Device().FS().OpenFile(path)
	if err != nil {
		return 0
	}

	var best int64
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 3 || fields[1] != "score" {
			continue
		}
		v, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			continue
		}
		if v > best {
			best = v
		}
	}
	return best
}
