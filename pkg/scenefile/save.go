package scenefile

import (
	"errors"
	"fmt"

	"smartsave/pkg/document"
)

// Save writes the open document to Path. When the host reports the folder
// missing, the folder tree is created and the save retried once. Other
// failures are returned unchanged.
func (sf *SceneFile) Save() (string, error) {
	if sf.host == nil {
		return "", ErrNoHost
	}

	path := sf.Path()

	err := sf.host.SaveDocumentAs(path)
	var missing *document.MissingDirectoryError
	if !errors.As(err, &missing) {
		if err != nil {
			return "", err
		}
		sf.logger.Info("saved scene", "path", path)
		return path, nil
	}

	sf.logger.Warn("missing directories in path, creating folders", "folder", sf.folderPath, "missing", missing.Dir)
	if err := sf.fs.MkdirAll(sf.folderPath); err != nil {
		return "", fmt.Errorf("create scene folder: %w", err)
	}

	if err := sf.host.SaveDocumentAs(path); err != nil {
		return "", err
	}

	sf.logger.Info("saved scene", "path", path)
	return path, nil
}

// SaveIncrement moves Version to NextAvailableVersion and saves. If the save
// fails, Version is restored to its previous value.
func (sf *SceneFile) SaveIncrement() (string, error) {
	next, err := sf.NextAvailableVersion()
	if err != nil {
		return "", err
	}

	previous := sf.version
	sf.version = next

	path, err := sf.Save()
	if err != nil {
		sf.version = previous
		return "", err
	}
	return path, nil
}
