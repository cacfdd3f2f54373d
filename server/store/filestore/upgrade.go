package filestore

import (
	"github.com/blang/semver/v4"
	"github.com/pkg/errors"
)

type upgrade struct {
	toVersion string
	run       func(s *Store) error
}

var upgrades = []*upgrade{
	{toVersion: "1.1.0", run: upgradeTo110},
}

// UpdateDatabase upgrades the stored data schema from a given version to the
// newest version.
func (s *Store) UpdateDatabase(version string) error {
	v, err := s.System().GetVersion()
	if err != nil {
		return err
	}

	// If no version is set, set it to the newest version
	if v == "" {
		newest, err := semver.Parse(version)
		if err != nil {
			return errors.Wrapf(err, "failed to parse version %q", version)
		}
		// Don't store patch versions
		newest.Patch = 0

		s.logger.Info("fresh data directory, stamping schema version", "version", newest.String())
		return s.System().SaveVersion(newest.String())
	}

	current, err := semver.Parse(v)
	if err != nil {
		return errors.Wrapf(err, "invalid stored schema version %q", v)
	}
	for _, u := range s.upgrades {
		target := semver.MustParse(u.toVersion)
		if !s.shouldPerformUpgrade(current, target) {
			continue
		}
		if err := u.run(s); err != nil {
			return errors.Wrapf(err, "failed to upgrade data schema to %s", u.toVersion)
		}
		if err := s.System().SaveVersion(u.toVersion); err != nil {
			return err
		}
		s.logger.Info("data schema upgrade complete", "version", u.toVersion)
		current = target
	}
	return nil
}

func (s *Store) shouldPerformUpgrade(currentSchemaVersion, expectedSchemaVersion semver.Version) bool {
	if currentSchemaVersion.LT(expectedSchemaVersion) {
		s.logger.Warn("data schema version appears to be out of date, attempting upgrade",
			"current", currentSchemaVersion.String(), "expected", expectedSchemaVersion.String())
		return true
	}
	return false
}

// upgradeTo110 normalizes polls written by releases that stored absent vote
// maps as JSON null instead of an empty object.
func upgradeTo110(s *Store) error {
	polls, err := s.Poll().GetAll()
	if err != nil {
		return err
	}
	for _, p := range polls {
		if p.Votes != nil {
			continue
		}
		p.Votes = map[string]int{}
		if err := s.Poll().Update(p); err != nil {
			return err
		}
	}
	return nil
}
