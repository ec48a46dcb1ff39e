package generator

import "fmt"

func summaryPrompt(text string) string {
	return fmt.Sprintf(`Please analyze the following text and provide a comprehensive summary along with key points.

Text to summarize:
%s

Please respond in the following JSON format:
{
    "summary": "A comprehensive summary of the text (2-3 paragraphs)",
    "key_points": ["Key point 1", "Key point 2", "Key point 3", "Key point 4", "Key point 5"]
}

Ensure the response is valid JSON.`, text)
}

func quizPrompt(text string) string {
	return fmt.Sprintf(`Based on the following text, create a quiz with 5 multiple-choice questions to test understanding.

Text:
%s

Please respond in the following JSON format:
{
    "questions": [
        {
            "question": "Question text here?",
            "options": ["Option A", "Option B", "Option C", "Option D"],
            "correct_answer": 0,
            "explanation": "Brief explanation of why this is correct"
        }
    ]
}

Make sure:
- Each question has exactly 4 options
- correct_answer is the index (0-3) of the correct option
- Questions test different aspects of the content
- Ensure the response is valid JSON`, text)
}

func flashcardsPrompt(text string) string {
	return fmt.Sprintf(`Based on the following text, create 8 flashcards for studying key concepts.

Text:
%s

Please respond in the following JSON format:
{
    "flashcards": [
        {
            "front": "Question or concept",
            "back": "Answer or explanation"
        }
    ]
}

Make sure:
- Each flashcard tests an important concept
- Front side is concise (question/term)
- Back side provides clear explanation
- Cover different topics from the text
- Ensure the response is valid JSON`, text)
}
