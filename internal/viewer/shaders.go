package viewer

// Shader sources for the main shaded pass and the flat pick pass. Both share
// the vertex stage so the two pipelines see identical geometry.

const vertexShaderSrc = `
#version 410 core

layout (location = 0) in vec3 inPosition;
layout (location = 1) in vec3 inNormal;

uniform mat4 mvp;
uniform mat4 model;

out vec3 fragPosition;
out vec3 fragNormal;

void main() {
	fragPosition = (model * vec4(inPosition, 1.0)).xyz;
	fragNormal = normalize(mat3(model) * inNormal);
	gl_Position = mvp * vec4(inPosition, 1.0);
}
`

const fragmentShaderSrc = `
#version 410 core

in vec3 fragPosition;
in vec3 fragNormal;

uniform vec3 color;
uniform vec3 lightPos;
uniform vec3 viewPos;

out vec4 outColor;

void main() {
	vec3 normal = normalize(fragNormal);
	vec3 lightDir = normalize(lightPos - fragPosition);

	vec3 ambient = color * 0.3;

	float diff = max(dot(normal, lightDir), 0.0);
	vec3 diffuse = diff * color * 0.7;

	vec3 viewDir = normalize(viewPos - fragPosition);
	vec3 reflectDir = reflect(-lightDir, normal);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), 16.0);
	vec3 specular = spec * vec3(0.2);

	outColor = vec4(ambient + diffuse + specular, 1.0);
}
`

const pickFragmentShaderSrc = `
#version 410 core

uniform vec3 pickColor;

out vec4 outColor;

void main() {
	outColor = vec4(pickColor, 1.0);
}
`
