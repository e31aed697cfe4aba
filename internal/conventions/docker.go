package conventions

import "github.com/hupe1980/pomgen/internal/maven"

// DockerfilePluginVersion is the dockerfile-maven-plugin version.
const DockerfilePluginVersion = "1.4.8"

// DockerPackaging builds and pushes a Docker image from the jar instead of
// deploying the jar to a Maven repository.
type DockerPackaging struct{}

// Order implements Customizer.
func (DockerPackaging) Order() int { return 20 }

// Customize implements Customizer.
func (DockerPackaging) Customize(build *maven.Build) {
	build.Settings().Packaging("jar")
	build.Plugins().Add(SpringBootGroupID, "spring-boot-maven-plugin")

	build.Plugins().Add("org.apache.maven.plugins", "maven-deploy-plugin", func(p *maven.PluginBuilder) {
		p.Configuration(func(c *maven.ConfigurationBuilder) { c.Add("skip", "true") })
	})

	build.Plugins().Add("com.spotify", "dockerfile-maven-plugin", func(p *maven.PluginBuilder) {
		p.Version(DockerfilePluginVersion)
		p.Execution("package", func(e *maven.ExecutionBuilder) {
			e.Goal("build").Goal("tag").Phase("package")
		})
		p.Execution("deploy", func(e *maven.ExecutionBuilder) {
			e.Goal("push").Phase("deploy")
		})
		p.Configuration(func(c *maven.ConfigurationBuilder) {
			c.Add("repository", "${project.artifactId}")
			c.Add("tag", "${project.version}")
			c.Configure("buildArgs", func(args *maven.ConfigurationBuilder) {
				args.Add("JAR_FILE", "target/${project.artifactId}-${project.version}.jar")
			})
		})
	})

	database := databaseName(build)

	build.Plugins().Add("io.fabric8", "docker-maven-plugin", func(p *maven.PluginBuilder) {
		p.Configuration(func(c *maven.ConfigurationBuilder) {
			c.Configure("images", func(images *maven.ConfigurationBuilder) {
				images.AddConfigure("image", func(image *maven.ConfigurationBuilder) {
					image.Add("name", PostgresImage)
					image.Add("alias", "db")
					image.Configure("run", func(run *maven.ConfigurationBuilder) {
						run.Add("namingStrategy", "alias")
						run.Configure("env", func(env *maven.ConfigurationBuilder) {
							env.Add("POSTGRES_DB", database)
							env.Add("POSTGRES_USER", "porta")
							env.Add("POSTGRES_PASSWORD", "porta")
						})
					})
				})
			})
		})
	})
}
