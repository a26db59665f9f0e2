package jenkins

import (
	"fmt"
	"strings"

	"buildboard/internal/models"
)

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// configXML renders the job configuration document submitted to the
// createItem endpoint.
func configXML(cfg models.JobConfig) string {
	script := cfg.Script
	if script == "" {
		script = defaultPipelineScript(cfg)
	}
	return fmt.Sprintf(`<?xml version='1.1' encoding='UTF-8'?>
<flow-definition plugin="workflow-job@2.40">
  <description>%s</description>
  <keepDependencies>false</keepDependencies>
  <properties/>
  <definition class="org.jenkinsci.plugins.workflow.cps.CpsFlowDefinition" plugin="workflow-cps@2.92">
    <script>%s</script>
    <sandbox>true</sandbox>
  </definition>
  <triggers/>
  <disabled>false</disabled>
</flow-definition>`, xmlEscaper.Replace(cfg.Description), xmlEscaper.Replace(script))
}

// defaultPipelineScript builds a declarative pipeline with checkout,
// build, test and deploy stages for the configured repository.
func defaultPipelineScript(cfg models.JobConfig) string {
	branch := cfg.Branch
	if branch == "" {
		branch = "main"
	}
	return fmt.Sprintf(`pipeline {
    agent any

    stages {
        stage('Checkout') {
            steps {
                git url: '%s', branch: '%s'
            }
        }

        stage('Build') {
            steps {
                echo 'Building...'
            }
        }

        stage('Test') {
            steps {
                echo 'Testing...'
            }
        }

        stage('Deploy') {
            steps {
                echo 'Deploying...'
            }
        }
    }

    post {
        success {
            echo 'Build succeeded!'
        }
        failure {
            echo 'Build failed!'
        }
    }
}`, cfg.GitURL, branch)
}
