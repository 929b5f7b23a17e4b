package prompt

import "os"

// Answers are the choices collected by Wizard.
type Answers struct {
	SourceDir     string
	Tools         []string
	IsProject     bool
	ProjectDir    string
	AutoOverwrite bool
}

// WizardDefaults pre-fill the wizard.
type WizardDefaults struct {
	SourceDir string
	Tools     []Option
}

// Wizard asks, in order: the source directory, the target tools, whether
// to write global or project config, the project directory for project
// runs, and whether to overwrite existing files.
func (p *Prompter) Wizard(def WizardDefaults) (*Answers, error) {
	var a Answers
	var err error

	if a.SourceDir, err = p.Input("Source directory", def.SourceDir); err != nil {
		return nil, err
	}
	if a.Tools, err = p.SelectMulti("Target tools", def.Tools); err != nil {
		return nil, err
	}

	global, err := p.Confirm("Write global config (no for a project)", true)
	if err != nil {
		return nil, err
	}
	a.IsProject = !global

	if a.IsProject {
		cwd, _ := os.Getwd()
		if a.ProjectDir, err = p.Input("Project directory", cwd); err != nil {
			return nil, err
		}
	}

	if a.AutoOverwrite, err = p.Confirm("Overwrite existing files", false); err != nil {
		return nil, err
	}

	return &a, nil
}
