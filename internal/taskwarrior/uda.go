package taskwarrior

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const udaMarker = "uda.challenge.type"

const udaBlock = `
# TaskQuest UDAs
uda.challenge.type=numeric
uda.challenge.label=Challenge
uda.challenge.values=1,2,3,4,5,6,7,8,9,10

# Stats trained by a task: stat1 gets the full gain, stat2 half
uda.stat1.type=string
uda.stat1.label=Primary Stat
uda.stat1.values=STR,DEX,CON,INT,WIS,CHA

uda.stat2.type=string
uda.stat2.label=Secondary Stat
uda.stat2.values=STR,DEX,CON,INT,WIS,CHA

color.uda.challenge.1=color246
color.uda.challenge.2=color246
color.uda.challenge.3=color250
color.uda.challenge.4=color250
color.uda.challenge.5=color255
color.uda.challenge.6=color255
color.uda.challenge.7=color226
color.uda.challenge.8=color208
color.uda.challenge.9=color196
color.uda.challenge.10=color201
`

// UDAsConfigured reports whether the taskrc already defines the challenge UDA.
func UDAsConfigured(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("open taskrc: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if strings.Contains(sc.Text(), udaMarker) {
			return true, nil
		}
	}
	if err := sc.Err(); err != nil {
		return false, fmt.Errorf("read taskrc: %w", err)
	}
	return false, nil
}

// ConfigureUDAs appends the challenge/stat1/stat2 definitions to the taskrc,
// creating it if needed. It reports false when they were already present.
func ConfigureUDAs(path string) (bool, error) {
	ok, err := UDAsConfigured(path)
	if err != nil {
		return false, err
	}
	if ok {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create taskrc dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return false, fmt.Errorf("open taskrc: %w", err)
	}
	if _, err := f.WriteString(udaBlock); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("write taskrc: %w", err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("close taskrc: %w", err)
	}
	return true, nil
}
