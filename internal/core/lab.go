package core

// Lab combines both tools behind the workflow operations: the prerequisite
// validations and the provisioning actions gated on them.
type Lab struct {
	Vagrant *Vagrant
	Ansible *Ansible
}

// NewLab creates a Lab from already configured services.
func NewLab(vagrant *Vagrant, ansible *Ansible) *Lab {
	return &Lab{Vagrant: vagrant, Ansible: ansible}
}

// Validate checks the Vagrantfile first and the playbook second. The
// playbook is only linted once the Vagrantfile passes.
func (l *Lab) Validate(playbookPath string) error {
	if err := l.Vagrant.Validate(); err != nil {
		return err
	}
	return l.Ansible.LintPlaybook(playbookPath)
}

// Setup validates both definitions, then creates and provisions the
// virtual machine. Nothing is spawned past the first failure.
func (l *Lab) Setup(playbookPath string) error {
	if err := l.Validate(playbookPath); err != nil {
		return err
	}
	return l.Vagrant.Up()
}

// Reprovision validates both definitions, then re-runs provisioning on the
// existing virtual machine.
func (l *Lab) Reprovision(playbookPath string) error {
	if err := l.Validate(playbookPath); err != nil {
		return err
	}
	return l.Vagrant.Provision()
}
