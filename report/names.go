package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dnsvet/dnsvet/evt"
	"github.com/dnsvet/dnsvet/log"
	"github.com/dnsvet/dnsvet/model"
	"github.com/dnsvet/dnsvet/util"
)

// ReadNamesFile reads requested names, one per line, from a UTF-8 text file
func ReadNamesFile(path string) ([]model.DomainName, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't read names file '%s': %w", path, err)
	}
	defer file.Close()

	return ReadNames(file)
}

// ReadNames parses requested names line by line. Empty lines are skipped
// silently, comments are stripped, malformed names are logged and dropped
// without failing the batch. The result preserves input order and contains
// each canonical name once.
func ReadNames(r io.Reader) ([]model.DomainName, error) {
	var names []model.DomainName

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if idx := strings.IndexRune(line, '#'); idx != -1 {
			line = strings.TrimSpace(line[:idx])
		}

		if len(line) == 0 {
			continue
		}

		name, err := parseName(line)
		if err != nil {
			continue
		}

		names = append(names, name)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("can't read names: %w", err)
	}

	return util.Deduplicate(names), nil
}

// ParseNames normalizes names given as discrete arguments
func ParseNames(args []string) []model.DomainName {
	var names []model.DomainName

	for _, arg := range args {
		if len(strings.TrimSpace(arg)) == 0 {
			continue
		}

		name, err := parseName(arg)
		if err != nil {
			continue
		}

		names = append(names, name)
	}

	return util.Deduplicate(names)
}

func parseName(text string) (model.DomainName, error) {
	name, err := model.NewDomainName(text)
	if err != nil {
		log.PrefixedLog("names").Warnf("skipping invalid name '%s': %s", log.EscapeInput(text), err)
		evt.Bus().Publish(evt.NameDiscarded, log.EscapeInput(text))

		return "", err
	}

	return name, nil
}
