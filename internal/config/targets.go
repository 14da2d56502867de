package config

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/gpu-tools/gpumon/internal/errors"
)

// DefaultSSHPort is used when a target line carries no -p override.
const DefaultSSHPort = "22"

// Target identifies one machine in the fleet file.
type Target struct {
	// Host is the address as written in the fleet file: an IP, a hostname,
	// or an SSH config alias.
	Host string

	// Port is the SSH port for remote targets.
	Port string
}

// Local reports whether telemetry for this target is gathered by running
// commands directly instead of over SSH.
func (t Target) Local() bool {
	switch t.Host {
	case ".", "localhost", "127.0.0.1":
		return true
	}
	return false
}

// String returns the display form of the target.
func (t Target) String() string {
	if t.Local() {
		return "localhost"
	}
	if t.Port != "" && t.Port != DefaultSSHPort {
		return net.JoinHostPort(t.Host, t.Port)
	}
	return t.Host
}

// ParseTarget parses one fleet file line of the form "<address> [-p<port>]".
func ParseTarget(line string) (Target, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Target{}, errors.New(errors.ErrConfig,
			"Empty target line",
			"Each line needs at least an address, e.g. '10.0.0.5' or '10.0.0.5 -p8022'")
	}

	t := Target{Host: fields[0], Port: DefaultSSHPort}

	for _, opt := range fields[1:] {
		switch {
		case strings.HasPrefix(opt, "-p"):
			port := strings.TrimPrefix(opt, "-p")
			if _, err := strconv.Atoi(port); err != nil {
				return Target{}, errors.New(errors.ErrConfig,
					fmt.Sprintf("Invalid port in target line: %q", line),
					"Ports look like '-p8022'")
			}
			t.Port = port
		default:
			return Target{}, errors.New(errors.ErrConfig,
				fmt.Sprintf("Unrecognized option %q in target line: %q", opt, line),
				"Only '-p<port>' is supported after the address")
		}
	}

	return t, nil
}

// LoadTargets reads the fleet file and returns targets in file order.
// Blank lines are skipped; lines starting with '#' are treated as comments.
func LoadTargets(path string) ([]Target, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't read target file: "+path,
			"Run 'gpumon init' to create one, or point --targets at your fleet file")
	}
	defer f.Close()

	var targets []Target
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t, err := ParseTarget(line)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Bad target on line %d of %s", lineNo, path),
				"Fix the line or comment it out with '#'")
		}
		targets = append(targets, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed while reading target file: "+path,
			"Check file permissions and encoding")
	}

	return targets, nil
}
