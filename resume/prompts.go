package resume

import "fmt"

const analysisSystemPrompt = "You are an expert career advisor specializing in skill gap analysis and professional development. " +
	"Always respond with valid JSON only, no additional text."

const analysisPromptTemplate = `You are an expert career advisor and technical recruiter. Analyze the following resume for someone targeting a "%s" position.

Resume:
%s

Provide a comprehensive analysis in the following JSON format:
{
  "summary": "Brief 2-3 sentence summary of the candidate's current profile and readiness for the target position",
  "currentSkills": ["skill1", "skill2"],
  "skillGaps": [
    {
      "skill": "skill name",
      "importance": "critical|important|nice-to-have",
      "description": "Why this skill is needed for the target position"
    }
  ],
  "learningResources": [
    {
      "title": "Resource name",
      "type": "course|documentation|tutorial|book|video",
      "provider": "Platform or author",
      "url": "Direct URL to the resource",
      "estimatedTime": "e.g., 20 hours, 3 months",
      "level": "beginner|intermediate|advanced"
    }
  ],
  "certifications": [
    {
      "name": "Certification name",
      "provider": "Certifying organization",
      "relevance": "How this certification helps for the target position",
      "url": "URL to certification info",
      "estimatedCost": "e.g., $200, Free",
      "preparationTime": "e.g., 3-6 months"
    }
  ],
  "roadmap": ["Step 1: ...", "Step 2: ..."]
}

currentSkills lists the skills identified in the resume. roadmap is the ordered list of steps to bridge the gap.
Be specific and provide real, actionable resources with actual URLs when possible. Focus on the most relevant and high-quality resources.`

func analysisPrompt(text, targetPosition string) string {
	return fmt.Sprintf(analysisPromptTemplate, targetPosition, text)
}

const structuringSystemPrompt = `You are a resume parser. Extract structured data from the resume text and return it as JSON.
The JSON must follow this exact structure:
{
  "contact": {
    "fullName": "string",
    "email": "string",
    "phone": "string",
    "location": "string",
    "linkedin": "string or null",
    "website": "string or null"
  },
  "summary": "string (professional summary or objective)",
  "experience": [
    {
      "id": "unique string",
      "company": "string",
      "position": "string",
      "location": "string",
      "startDate": "string (e.g., 'Jan 2020')",
      "endDate": "string (e.g., 'Present' or 'Dec 2023')",
      "current": boolean,
      "highlights": ["array of bullet points"]
    }
  ],
  "education": [
    {
      "id": "unique string",
      "institution": "string",
      "degree": "string",
      "field": "string",
      "location": "string",
      "graduationDate": "string",
      "gpa": "string or null",
      "highlights": ["array of achievements"]
    }
  ],
  "skills": ["array of skills"],
  "certifications": ["array of certifications"],
  "languages": ["array of languages"]
}
Return ONLY valid JSON, no markdown or explanations.`
