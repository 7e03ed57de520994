package glbackend

import (
	"github.com/hubastard/echlib/engine/assets"
	"github.com/hubastard/echlib/engine/core"
)

const posVertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const uvVertexSource = `
#version 330 core
layout(location=0) in vec2 aPos;
layout(location=1) in vec2 aUV;
out vec2 vUV;
void main() {
    vUV = aUV;
    gl_Position = vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const flatFragmentSource = `
#version 330 core
uniform vec4 uColor;
out vec4 FragColor;
void main() {
    FragColor = uColor;
}
` + "\x00"

const texturedFragmentSource = `
#version 330 core
in vec2 vUV;
uniform sampler2D uTex;
uniform vec4 uColor;
out vec4 FragColor;
void main() {
    vec4 t = texture(uTex, vUV);
    if (t.a < 0.1) discard;
    FragColor = t * uColor;
}
` + "\x00"

const textFragmentSource = `
#version 330 core
in vec2 vUV;
uniform sampler2D uTex;
uniform vec4 uColor;
out vec4 FragColor;
void main() {
    float coverage = texture(uTex, vUV).r;
    FragColor = vec4(uColor.rgb, uColor.a * coverage);
}
` + "\x00"

type shaderPair struct {
	vertex, fragment string
}

func builtinShaders(m core.Material) shaderPair {
	switch m {
	case core.MaterialTextured:
		return shaderPair{uvVertexSource, texturedFragmentSource}
	case core.MaterialText:
		return shaderPair{uvVertexSource, textFragmentSource}
	default:
		return shaderPair{posVertexSource, flatFragmentSource}
	}
}

// shaderFiles names the override files for m, e.g. "textured.vert".
func shaderFiles(m core.Material) (vert, frag string) {
	return m.String() + ".vert", m.String() + ".frag"
}

// shaderSources returns the GLSL for m. When dir is set, files found there
// replace the built-in source one stage at a time.
func shaderSources(dir string, m core.Material) shaderPair {
	src := builtinShaders(m)
	if dir == "" {
		return src
	}
	vert, frag := shaderFiles(m)
	if s, err := assets.LoadShader(dir, vert); err == nil {
		src.vertex = s
	} else {
		core.Logger().Warn("using built-in shader", "material", m.String(), "error", err)
	}
	if s, err := assets.LoadShader(dir, frag); err == nil {
		src.fragment = s
	} else {
		core.Logger().Warn("using built-in shader", "material", m.String(), "error", err)
	}
	return src
}
