package memsemx

// WalkBuilder provides a fluent API for assembling walk configurations
// without writing StepConfig literals by hand.
type WalkBuilder struct {
	config WalkConfig
}

// StepBuilder provides fluent methods for configuring the step most
// recently added to the walk.
type StepBuilder struct {
	b   *WalkBuilder
	idx int
}

// NewWalkBuilder creates a builder for a walk with the given ID and title.
func NewWalkBuilder(id, title string) *WalkBuilder {
	return &WalkBuilder{config: WalkConfig{ID: id, Title: title}}
}

// Version sets an explicit config version, overriding the derived one.
func (b *WalkBuilder) Version(v string) *WalkBuilder {
	b.config.Version = v
	return b
}

// Step appends a step by catalog name and returns its builder.
func (b *WalkBuilder) Step(name string) *StepBuilder {
	b.config.Steps = append(b.config.Steps, StepConfig{Step: name})
	return &StepBuilder{b: b, idx: len(b.config.Steps) - 1}
}

// Build validates the assembled configuration and returns it.
func (b *WalkBuilder) Build() (WalkConfig, error) {
	config := b.config
	// Deep-copy the steps so further builder use cannot mutate the result.
	config.Steps = append([]StepConfig(nil), b.config.Steps...)
	if err := config.Validate(); err != nil {
		return WalkConfig{}, err
	}
	return config, nil
}

// StepBuilder fluent methods

// Titled sets the narrated section title for this step.
func (sb *StepBuilder) Titled(title string) *StepBuilder {
	sb.b.config.Steps[sb.idx].Title = title
	return sb
}

// Size sets the buffer element count for this step.
func (sb *StepBuilder) Size(n int) *StepBuilder {
	sb.b.config.Steps[sb.idx].Params.Size = n
	return sb
}

// Start sets the fill start value for this step.
func (sb *StepBuilder) Start(v int32) *StepBuilder {
	sb.b.config.Steps[sb.idx].Params.Start = v
	return sb
}

// Multiplier sets the scaling factor for this step.
func (sb *StepBuilder) Multiplier(m int32) *StepBuilder {
	sb.b.config.Steps[sb.idx].Params.Multiplier = m
	return sb
}

// Count sets the batch size for this step.
func (sb *StepBuilder) Count(n int) *StepBuilder {
	sb.b.config.Steps[sb.idx].Params.Count = n
	return sb
}

// Step appends the next step to the walk, continuing the chain.
func (sb *StepBuilder) Step(name string) *StepBuilder {
	return sb.b.Step(name)
}

// Build finishes the walk from a step chain.
func (sb *StepBuilder) Build() (WalkConfig, error) {
	return sb.b.Build()
}
