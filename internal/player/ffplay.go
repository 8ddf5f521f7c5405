package player

import (
	"fmt"
	"os/exec"
	"sync"

	"github.com/sirupsen/logrus"
)

// FFPlay plays audio files by shelling out to ffplay. The process exits by
// itself at the end of the file, which drives the natural-completion path.
type FFPlay struct{}

// Play starts ffplay for the given file.
func (FFPlay) Play(path string, onDone func()) (Playback, error) {
	cmd := exec.Command("ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", path)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("playback: start ffplay: %w", err)
	}

	pb := &ffPlayback{cmd: cmd}

	go func() {
		err := cmd.Wait()

		pb.mu.Lock()
		stopped := pb.stopped
		pb.mu.Unlock()
		if stopped {
			return
		}

		if err != nil {
			logrus.Warnf("ffplay exited with error: %v", err)
		}
		if onDone != nil {
			onDone()
		}
	}()

	return pb, nil
}

type ffPlayback struct {
	cmd     *exec.Cmd
	mu      sync.Mutex
	stopped bool
}

func (p *ffPlayback) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	p.mu.Unlock()

	if p.cmd.Process != nil {
		if err := p.cmd.Process.Kill(); err != nil {
			logrus.Debugf("kill ffplay: %v", err)
		}
	}
}
