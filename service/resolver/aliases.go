package resolver

import "sort"

// serviceAliases maps common abbreviations and informal names to the
// exact service names Cost Explorer reports
var serviceAliases = map[string]string{
	// Compute
	"ec2":       "Amazon Elastic Compute Cloud - Compute",
	"lambda":    "AWS Lambda",
	"ecs":       "Amazon Elastic Container Service",
	"eks":       "Amazon Elastic Kubernetes Service",
	"fargate":   "Amazon Elastic Container Service",
	"lightsail": "Amazon Lightsail",

	// Storage
	"s3":              "Amazon Simple Storage Service",
	"ebs":             "Amazon Elastic Block Store",
	"efs":             "Amazon Elastic File System",
	"fsx":             "Amazon FSx",
	"glacier":         "Amazon Glacier",
	"storage gateway": "AWS Storage Gateway",

	// Database
	"rds":         "Amazon Relational Database Service",
	"dynamodb":    "Amazon DynamoDB",
	"aurora":      "Amazon Relational Database Service",
	"redshift":    "Amazon Redshift",
	"documentdb":  "Amazon DocumentDB (with MongoDB compatibility)",
	"neptune":     "Amazon Neptune",
	"elasticache": "Amazon ElastiCache",

	// Networking
	"cloudfront":  "Amazon CloudFront",
	"route53":     "Amazon Route 53",
	"vpc":         "Amazon Virtual Private Cloud",
	"elb":         "Elastic Load Balancing",
	"alb":         "Elastic Load Balancing",
	"nlb":         "Elastic Load Balancing",
	"api gateway": "Amazon API Gateway",
	// common confusion with the CDN competitor
	"cloudflare": "Amazon CloudFront",

	// Analytics
	"athena":     "Amazon Athena",
	"emr":        "Amazon Elastic MapReduce",
	"kinesis":    "Amazon Kinesis",
	"glue":       "AWS Glue",
	"quicksight": "Amazon QuickSight",

	// AI/ML
	"sagemaker":   "Amazon SageMaker",
	"rekognition": "Amazon Rekognition",
	"textract":    "Amazon Textract",
	"comprehend":  "Amazon Comprehend",
	"translate":   "Amazon Translate",

	// Security
	"iam":             "AWS Identity and Access Management",
	"kms":             "AWS Key Management Service",
	"secrets manager": "AWS Secrets Manager",
	"waf":             "AWS WAF",
	"shield":          "AWS Shield",
	"guard duty":      "Amazon GuardDuty",

	// Monitoring
	"cloudwatch": "Amazon CloudWatch",
	"cloudtrail": "AWS CloudTrail",
	"config":     "AWS Config",
	"x-ray":      "AWS X-Ray",

	// Developer tools
	"codecommit":   "AWS CodeCommit",
	"codebuild":    "AWS CodeBuild",
	"codepipeline": "AWS CodePipeline",
	"codedeploy":   "AWS CodeDeploy",

	// Integration
	"sns":            "Amazon Simple Notification Service",
	"sqs":            "Amazon Simple Queue Service",
	"eventbridge":    "Amazon EventBridge",
	"step functions": "AWS Step Functions",

	// Management
	"cloudformation":  "AWS CloudFormation",
	"systems manager": "AWS Systems Manager",
	"opsworks":        "AWS OpsWorks",
	"organizations":   "AWS Organizations",

	// Cost management
	"cost explorer":         "AWS Cost Explorer",
	"budgets":               "AWS Budgets",
	"cost and usage report": "AWS Cost and Usage Report",
}

// AliasCanonicalNames returns the deduplicated canonical names of the
// alias table, sorted for determinism. Used as the discovery fallback.
func AliasCanonicalNames() []string {
	seen := make(map[string]struct{}, len(serviceAliases))
	names := make([]string, 0, len(serviceAliases))
	for _, name := range serviceAliases {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
