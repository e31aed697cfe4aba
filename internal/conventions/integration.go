package conventions

import "github.com/hupe1980/pomgen/internal/maven"

// Integration test plugin versions.
const (
	SurefireVersion     = "2.22.2"
	FailsafeVersion     = "2.22.2"
	DockerPluginVersion = "0.33.0"
	PostgresImage       = "postgres:10"
)

// IntegrationTests splits unit and integration tests between surefire and
// failsafe and adds a pg-docker profile that runs a Postgres container
// around the integration-test phase.
type IntegrationTests struct{}

// Order implements Customizer.
func (IntegrationTests) Order() int { return 10 }

// Customize implements Customizer.
func (IntegrationTests) Customize(build *maven.Build) {
	build.Plugins().Add("org.apache.maven.plugins", "maven-failsafe-plugin", func(p *maven.PluginBuilder) {
		p.Version(FailsafeVersion).Configuration(func(c *maven.ConfigurationBuilder) {
			c.Add("argLine", "-Ddb-host=${docker.container.db.ip} -Duse-datasource=true")
		})
	})

	build.Plugins().Add("org.apache.maven.plugins", "maven-surefire-plugin", func(p *maven.PluginBuilder) {
		p.Version(SurefireVersion).Configuration(func(c *maven.ConfigurationBuilder) {
			c.Configure("excludes", func(excludes *maven.ConfigurationBuilder) {
				excludes.Add("exclude", "**/*Tests.java")
			})
		})
	})

	database := databaseName(build)

	build.Profiles().Add(maven.NewProfile("pg-docker",
		maven.ProfileActivation(func(a *maven.Activation) { a.SetActiveByDefault(false) }),
		maven.ProfileBuild(func(b *maven.Build) {
			b.Plugins().Add("io.fabric8", "docker-maven-plugin", postgresContainer(database))
		}),
	))
}

func databaseName(build *maven.Build) string {
	s := build.BuildSettings()
	if s.Name != "" {
		return s.Name + "-db"
	}

	return s.ArtifactID + "-db"
}

func postgresContainer(database string) func(*maven.PluginBuilder) {
	return func(p *maven.PluginBuilder) {
		p.Version(DockerPluginVersion)
		p.Configuration(func(c *maven.ConfigurationBuilder) {
			c.Configure("images", func(images *maven.ConfigurationBuilder) {
				images.Configure("image", func(image *maven.ConfigurationBuilder) {
					image.Add("name", PostgresImage)
					image.Add("alias", "db")
					image.Configure("run", func(run *maven.ConfigurationBuilder) {
						run.Add("namingStrategy", "alias")
						run.Configure("env", func(env *maven.ConfigurationBuilder) {
							env.Add("POSTGRES_DB", database)
							env.Add("POSTGRES_USER", "porta")
							env.Add("POSTGRES_PASSWORD", "porta")
						})
						run.Configure("ports", func(ports *maven.ConfigurationBuilder) {
							ports.Add("port", "5432:5432")
						})
						run.Configure("wait", func(wait *maven.ConfigurationBuilder) {
							wait.Configure("tcp", func(tcp *maven.ConfigurationBuilder) {
								tcp.Configure("ports", func(ports *maven.ConfigurationBuilder) {
									ports.Add("port", "5432")
								})
							})
							wait.Add("time", "20000")
						})
						run.Configure("log", func(log *maven.ConfigurationBuilder) {
							log.Add("color", "green")
						})
					})
				})
			})
		})
		// start stops a leftover container before starting a new one.
		p.Execution("start", func(e *maven.ExecutionBuilder) {
			e.Phase("pre-integration-test").Goal("stop").Goal("start")
		})
		p.Execution("stop", func(e *maven.ExecutionBuilder) {
			e.Phase("post-integration-test").Goal("stop")
		})
	}
}
