package shader

// Registry is the ordered list of descriptors for one batch run.
// Order decides compilation order only; no descriptor depends on another.
type Registry struct {
	descriptors []Descriptor
}

// NewRegistry creates a registry holding a copy of ds in the given order.
func NewRegistry(ds ...Descriptor) *Registry {
	return &Registry{descriptors: append([]Descriptor(nil), ds...)}
}

// Descriptors returns the descriptors in declaration order.
// The returned slice is a copy.
func (r *Registry) Descriptors() []Descriptor {
	return append([]Descriptor(nil), r.descriptors...)
}

// Len returns the number of descriptors.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

// Filter returns a registry with only the descriptors of the given stage,
// preserving order.
func (r *Registry) Filter(stage Stage) *Registry {
	var out []Descriptor
	for _, d := range r.descriptors {
		if d.stage == stage {
			out = append(out, d)
		}
	}
	return &Registry{descriptors: out}
}

// Default returns the shader table of the Recluse engine renderer.
func Default() *Registry {
	return NewRegistry(
		New("ForwardPBR_NoLR", "ForwardPBR.frag", "-Od"),
		New("ForwardPBR_NoLR_Debug", "ForwardPBR.frag", "-Od -DENABLE_DEBUG=1"),
		New("ForwardPBR_LR", "ForwardPBR.frag", "-Od -DLOCAL_REFLECTIONS=1"),
		New("ForwardPBR_LR_Debug", "ForwardPBR.frag", "-Od -DLOCAL_REFLECTIONS=1 -DENABLE_DEBUG=1"),
		New("ForwardPBR", "ForwardPBR.vert"),
		New("PBR_LR_Nvidia", "PBR.comp", "-DNVIDIA=1 -DLOCAL_REFLECTIONS=1"),
		New("PBR_NoLR_Nvidia", "PBR.comp", "-DNVIDIA=1"),
		New("PBR_LR_Intel", "PBR.comp", "-DLOCAL_REFLECTIONS=1"),
		New("PBR_NoLR_Intel", "PBR.comp"),
		New("PBR_LR_Amd", "PBR.comp", "-DAMD=1 -DLOCAL_REFLECTIONS=1"),
		New("PBR_NoLR_Amd", "PBR.comp", "-DAMD=1"),
		New("Sky", "Sky.frag"),
		New("Sky", "Sky.vert"),
		New("UI", "UI.vert"),
		New("UI", "UI.frag"),
		New("GBuffer", "GBuffer.vert"),
		New("GBuffer", "GBuffer.frag"),
		New("StaticGBuffer", "StaticGBuffer.vert"),
		New("HDR", "HDR.frag"),
		New("HDR", "HDR.vert"),
		New("Atmosphere", "Atmosphere.frag"),
		New("Atmosphere", "Atmosphere.vert"),
		New("Depth", "Depth.vert"),
		New("Depth", "Depth.frag"),
		New("Depth_Opaque", "Depth.frag", "-DDEPTH_OPAQUE=1"),
		New("DynamicDepth", "DynamicDepth.vert"),
		New("DownscaleBlurPass", "DownscaleBlurPass.frag"),
		New("DownscaleBlurPass", "DownscaleBlurPass.vert"),
		New("FXAA", "FXAA.comp"),
		New("FXAA_Nvidia", "FXAA.comp", "-DNVIDIA=1"),
		New("FinalPass", "FinalPass.vert"),
		New("FinalPass", "FinalPass.frag"),
		New("RenderQuad", "RenderQuad.vert"),
		New("GlowPass", "GlowPass.frag"),
		New("PBR_NoLR", "PBR.frag"),
		New("PBR_LR", "PBR.frag", "-DLOCAL_REFLECTIONS=1"),
		New("PBR", "PBR.vert"),
		New("Particles", "Particles.frag"),
		New("Particles", "Particles.vert"),
		New("Particles", "Particles.geom"),
		New("Particles", "Particles.comp"),
		New("ForwardPBR_MorphTargets", "ForwardPBR.vert", "-DINCLUDE_MORPH_TARGET_ANIMATION=1"),
		New("DynamicDepth_MorphTargets", "DynamicDepth.vert", "-DINCLUDE_MORPH_TARGET_ANIMATION=1"),
		New("GBuffer_MorphTargets", "GBuffer.vert", "-DINCLUDE_MORPH_TARGET_ANIMATION=1"),
		New("StaticGBuffer_MorphTargets", "StaticGBuffer.vert", "-DINCLUDE_MORPH_TARGET_ANIMATION=1"),
		New("Depth_MorphTargets", "Depth.vert", "-DINCLUDE_MORPH_TARGET_ANIMATION=1"),
		// TODO: re-enable once Depth.vert supports DEPTH_OPAQUE together with morph targets.
		// New("Depth_OpaqueMorphTargets", "Depth.vert", "-DINCLUDE_MORPH_TARGET_ANIMATION=1 -DDEPTH_OPAQUE=1"),
		New("LightClusterAssignment", "LightClusterAssignment.comp"),
		New("PrefilterSpecular", "PrefilterSpecular.comp"),
		New("GenerateBRDFLUT", "GenerateBRDFLUT.comp"),
		New("ParticleTrail", "ParticleTrail.vert"),
		New("ParticleTrail", "ParticleTrail.geom"),
		New("ParticleTrail", "ParticleTrail.frag"),
		New("Simple", "Simple.frag"),
		New("Simple", "Simple.vert"),
		New("Simple_anim", "Simple.vert", "-DSKIN_ANIMATION=1"),
	)
}
